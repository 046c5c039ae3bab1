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
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	t.Run("it adds the audit fields to the logger", func(t *testing.T) {
		ctx := TestContext()

		actual := Log(ctx, logrus.NewEntry(logrus.StandardLogger()).WithField("module", "App"), "test")

		assert.Equal(t, "test", actual.Data["event"])
		assert.Equal(t, TestActor, actual.Data["actor"])
		assert.Equal(t, "TestModule.TestOperation", actual.Data["operation"])
		assert.Equal(t, "audit", actual.Data["log"])
		assert.Equal(t, "App", actual.Data["module"])
	})
	t.Run("it panics when no actor is set", func(t *testing.T) {
		assert.Panics(t, func() {
			Log(context.Background(), logrus.NewEntry(logrus.StandardLogger()), "test")
		})
	})
	t.Run("it panics when no event name is set", func(t *testing.T) {
		assert.Panics(t, func() {
			Log(TestContext(), logrus.NewEntry(logrus.StandardLogger()), "")
		})
	})
	t.Run("it's captured on audit level", func(t *testing.T) {
		capturedLog := CaptureLogs(t)

		Log(TestContext(), logrus.NewEntry(logrus.StandardLogger()).WithField("module", "App"), UserLoggedInEvent).Info("User logged in")

		capturedLog.AssertContains(t, "App", UserLoggedInEvent, TestActor, "User logged in")
	})
}

func TestInfoFromContext(t *testing.T) {
	assert.Nil(t, InfoFromContext(context.Background()))
	assert.Equal(t, &Info{Actor: "1.2.3.4", Operation: "App.Logout"}, InfoFromContext(Context(context.Background(), "1.2.3.4", "App", "Logout")))
}

func TestAuditFormatter_Format(t *testing.T) {
	oldFormatter := logrus.StandardLogger().Formatter
	defer logrus.SetFormatter(oldFormatter)
	entry := &logrus.Entry{Logger: logrus.StandardLogger(), Level: logrus.InfoLevel, Message: "hello", Data: logrus.Fields{}}

	t.Run("text", func(t *testing.T) {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})

		data, err := auditFormatter{}.Format(entry)

		require.NoError(t, err)
		assert.True(t, bytes.Contains(data, []byte("level=audit")), string(data))
	})
	t.Run("json", func(t *testing.T) {
		logrus.SetFormatter(&logrus.JSONFormatter{})

		data, err := auditFormatter{}.Format(entry)

		require.NoError(t, err)
		assert.True(t, bytes.Contains(data, []byte(`"level":"audit"`)), string(data))
	})
}
