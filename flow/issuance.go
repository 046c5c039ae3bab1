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

package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

// NewIssuanceManager creates a manager for issuance flows, keeping them in the given registry.
func NewIssuanceManager(registry *Registry, deps Dependencies) *IssuanceManager {
	return &IssuanceManager{
		Registry: registry,
		deps:     deps,
	}
}

// IssuanceManager issues our newest credential to existing users.
type IssuanceManager struct {
	*Registry
	deps Dependencies
}

// Create starts issuing a credential to the user and returns the ID of the flow. Without a nonce, the flow connects
// through the invitation URL or agent name of the user. With a nonce, it waits for the user's agent to contact us.
func (m *IssuanceManager) Create(username string, nonce string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errorf(CodeInvalidParameters, "username is required")
	}
	flow := newFlow(KindIssuance, username, m.deps.Observer)
	m.add(flow)
	flow.start(func(ctx context.Context) error {
		return m.issue(ctx, steps{Dependencies: m.deps, flow: flow}, username, nonce)
	})
	flow.logger().Info("Issuance started")
	return flow.ID(), nil
}

func (m *IssuanceManager) issue(ctx context.Context, s steps, username string, nonce string) error {
	record, err := readUser(ctx, s.Users, username)
	if err != nil {
		return err
	}
	params, err := connectionParamsForUser(record.Opts, nonce)
	if err != nil {
		return err
	}
	definition, schema, err := s.latestSchema(ctx)
	if err != nil {
		return err
	}
	// fail before bothering the holder
	if err = checkAttributes(schema, record.PersonalInfo); err != nil {
		return err
	}

	l, err := s.connect(ctx, params, WatchConnection)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	s.flow.setStatus(StatusBuildingCredential)
	attributes, err := s.buildAttributes(schema, record.PersonalInfo)
	if err != nil {
		return err
	}
	return s.offerCredential(ctx, l.target, definition.ID, attributes)
}

func readUser(ctx context.Context, users user.Store, username string) (*user.Record, error) {
	record, err := users.Read(ctx, username)
	if errors.Is(err, user.ErrNotFound) {
		return nil, errorf(CodeUserNotFound, "user not found: %s", username)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read user: %w", err)
	}
	return record, nil
}
