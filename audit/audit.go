/*
 * Copyright (C) 2024 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package audit

import (
	"bytes"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// UserLoggedInEvent occurs when a user logged in, with a password or a credential.
	UserLoggedInEvent = "UserLoggedIn"
	// LoginFailedEvent occurs when a password login failed.
	LoginFailedEvent = "LoginFailed"
	// UserLoggedOutEvent occurs when a user logged out.
	UserLoggedOutEvent = "UserLoggedOut"
	// AccountCreatedEvent occurs when a user account was created without a signup flow.
	AccountCreatedEvent = "AccountCreated"
	// AccountDeletedEvent occurs when a user deleted their account.
	AccountDeletedEvent = "AccountDeleted"
	// InvitationCreatedEvent occurs when an invitation of our agent was handed out.
	InvitationCreatedEvent = "InvitationCreated"
)

const auditLogLevel = "audit"

var auditLoggerInstance *logrus.Logger
var initAuditLoggerOnce = &sync.Once{}

type auditContextKey struct{}

// Info contains the audit information of an operation.
type Info struct {
	// Actor is the user or client IP that invoked the operation.
	Actor string
	// Operation is the operation that was invoked, formatted as <module>.<operation>.
	Operation string
}

// Context returns a child context of the given context, carrying the audit information.
func Context(ctx context.Context, actor, module, operation string) context.Context {
	return context.WithValue(ctx, auditContextKey{}, Info{
		Actor:     actor,
		Operation: module + "." + operation,
	})
}

// InfoFromContext returns the audit information of the given context, or nil if there is none.
func InfoFromContext(ctx context.Context) *Info {
	info, ok := ctx.Value(auditContextKey{}).(Info)
	if !ok {
		return nil
	}
	return &info
}

// Log returns a logger for an audit event. The fields of the given logger are kept.
// It panics when the context carries no audit information or the event name is empty, since that's a programming error.
func Log(ctx context.Context, logger *logrus.Entry, eventName string) *logrus.Entry {
	info := InfoFromContext(ctx)
	if info == nil || info.Actor == "" {
		panic("audit: no actor in context")
	}
	if eventName == "" {
		panic("audit: no event name")
	}
	return auditLogger().
		WithFields(logger.Data).
		WithField("log", auditLogLevel).
		WithField("actor", info.Actor).
		WithField("operation", info.Operation).
		WithField("event", eventName)
}

// auditLogger returns the logger for audit events. logrus has no custom levels, so entries are logged on info level
// and the formatter rewrites the level.
func auditLogger() *logrus.Logger {
	initAuditLoggerOnce.Do(func() {
		auditLoggerInstance = logrus.New()
		auditLoggerInstance.SetOutput(logrus.StandardLogger().Out)
		auditLoggerInstance.SetFormatter(auditFormatter{})
		auditLoggerInstance.SetLevel(logrus.InfoLevel)
	})
	return auditLoggerInstance
}

// auditFormatter formats entries like the standard logger, on the audit level.
type auditFormatter struct{}

func (a auditFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data, err := logrus.StandardLogger().Formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	for _, replacement := range [][2]string{
		{"level=info", "level=" + auditLogLevel},
		{`"level":"info"`, `"level":"` + auditLogLevel + `"`},
		{"INFO", "AUDIT"},
	} {
		if bytes.Contains(data, []byte(replacement[0])) {
			return bytes.Replace(data, []byte(replacement[0]), []byte(replacement[1]), 1), nil
		}
	}
	return data, nil
}
