/*
 * Copyright (C) 2023 Nuts community
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
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// TestActor is the actor of TestContext.
const TestActor = "test-actor"

// TestContext returns a context carrying audit information.
func TestContext() context.Context {
	return Context(context.Background(), TestActor, "TestModule", "TestOperation")
}

// CapturedLog holds the audit log entries written during a test.
type CapturedLog struct {
	hook *test.Hook
}

// Contains reports whether an entry of the given event was logged.
func (c *CapturedLog) Contains(t *testing.T, eventName string) bool {
	t.Helper()
	for _, entry := range c.hook.AllEntries() {
		if entry.Data["event"] == eventName {
			return true
		}
	}
	return false
}

// AssertContains asserts an entry was logged on audit level with the given fields and message.
func (c *CapturedLog) AssertContains(t *testing.T, module string, event string, actor string, message string) {
	t.Helper()
	for _, entry := range c.hook.AllEntries() {
		if entry.Data["module"] == module &&
			entry.Data["event"] == event &&
			entry.Data["actor"] == actor &&
			entry.Message == message {
			formatted, err := entry.Logger.Formatter.Format(entry)
			require.NoError(t, err)
			if !strings.Contains(string(formatted), "level=audit") && !strings.Contains(string(formatted), "AUDIT") {
				t.Error("Audit log entry is not logged on 'audit' level")
			}
			return
		}
	}
	// If failed, collect log entries for error message
	var entries []string
	for _, entry := range c.hook.AllEntries() {
		msg, _ := (&logrus.TextFormatter{}).Format(entry)
		entries = append(entries, string(msg))
	}
	t.Errorf("Audit log doesn't contain expected entry with"+
		"  expected: module=%s, event=%s, description=%s, actor=%s\n"+
		"  found: %v", module, event, message, actor, entries)
}

// CaptureLogs captures the audit log entries written until the test ends.
func CaptureLogs(t *testing.T) *CapturedLog {
	// Reset the hooks to their original state when the test ends
	oldHooks := make(logrus.LevelHooks)
	for level, hooks := range auditLogger().Hooks {
		oldHooks[level] = append([]logrus.Hook{}, hooks...)
	}
	t.Cleanup(func() {
		auditLogger().ReplaceHooks(oldHooks)
	})

	hook := &test.Hook{}
	auditLogger().AddHook(hook)
	return &CapturedLog{hook: hook}
}
