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

package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func noSkip(_ echo.Context) bool {
	return false
}

func Test_requestLoggerMiddleware(t *testing.T) {
	newContext := func() (echo.Context, *httptest.ResponseRecorder) {
		request := httptest.NewRequest(http.MethodPost, "/signup", nil)
		request.RemoteAddr = "[::1]:4321"
		recorder := httptest.NewRecorder()
		return echo.New().NewContext(request, recorder), recorder
	}

	t.Run("it logs", func(t *testing.T) {
		ctx, _ := newContext()
		logger, hook := test.NewNullLogger()
		logFunc := requestLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		err := logFunc(func(context echo.Context) error {
			return context.NoContent(http.StatusNoContent)
		})(ctx)

		assert.NoError(t, err)
		assert.Len(t, hook.Entries, 1)
		assert.Equal(t, "::1", hook.LastEntry().Data["remote_ip"])
		assert.Equal(t, http.StatusNoContent, hook.LastEntry().Data["status"])
		assert.Equal(t, "/signup", hook.LastEntry().Data["uri"])
		assert.Equal(t, http.MethodPost, hook.LastEntry().Data["method"])
		assert.NotContains(t, hook.LastEntry().Data, "operation")
	})
	t.Run("it logs the operation", func(t *testing.T) {
		ctx, _ := newContext()
		ctx.Set(core.OperationIDContextKey, "StartSignup")
		logger, hook := test.NewNullLogger()
		logFunc := requestLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return context.NoContent(http.StatusAccepted)
		})(ctx)

		assert.Equal(t, "StartSignup", hook.LastEntry().Data["operation"])
	})
	t.Run("it handles echo.HTTPErrors", func(t *testing.T) {
		ctx, _ := newContext()
		logger, hook := test.NewNullLogger()
		logFunc := requestLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden)
		})(ctx)

		assert.Len(t, hook.Entries, 1)
		assert.Equal(t, http.StatusForbidden, hook.LastEntry().Data["status"])
	})
	t.Run("it handles httpStatusCodeError", func(t *testing.T) {
		ctx, _ := newContext()
		logger, hook := test.NewNullLogger()
		logFunc := requestLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return core.NotFoundError("not found")
		})(ctx)

		assert.Len(t, hook.Entries, 1)
		assert.Equal(t, http.StatusNotFound, hook.LastEntry().Data["status"])
	})
	t.Run("it handles go errors", func(t *testing.T) {
		ctx, _ := newContext()
		logger, hook := test.NewNullLogger()
		logFunc := requestLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return errors.New("failed")
		})(ctx)

		assert.Len(t, hook.Entries, 1)
		assert.Equal(t, http.StatusInternalServerError, hook.LastEntry().Data["status"])
	})
	t.Run("skipped", func(t *testing.T) {
		ctx, _ := newContext()
		logger, hook := test.NewNullLogger()
		logFunc := requestLoggerMiddleware(func(_ echo.Context) bool {
			return true
		}, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return context.NoContent(http.StatusOK)
		})(ctx)

		assert.Empty(t, hook.Entries)
	})
}

func Test_bodyLoggerMiddleware(t *testing.T) {
	newContext := func(contentType string, body []byte) echo.Context {
		request := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		request.Header.Set("Content-Type", contentType)
		return echo.New().NewContext(request, httptest.NewRecorder())
	}

	t.Run("it logs", func(t *testing.T) {
		ctx := newContext("application/json", []byte(`"request"`))
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		logFunc := bodyLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		err := logFunc(func(context echo.Context) error {
			return context.Blob(http.StatusOK, "application/json", []byte(`"response"`))
		})(ctx)

		assert.NoError(t, err)
		assert.Len(t, hook.Entries, 2)
		assert.Equal(t, `HTTP request body: "request"`, hook.AllEntries()[0].Message)
		assert.Equal(t, `HTTP response body: "response"`, hook.AllEntries()[1].Message)
	})
	t.Run("request and response not loggable", func(t *testing.T) {
		ctx := newContext("application/binary", []byte{1, 2, 3})
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		logFunc := bodyLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		err := logFunc(func(context echo.Context) error {
			return context.Blob(http.StatusOK, "application/binary", []byte{1, 2, 3})
		})(ctx)

		assert.NoError(t, err)
		assert.Len(t, hook.Entries, 2)
		assert.Equal(t, `HTTP request body: (not loggable: application/binary)`, hook.AllEntries()[0].Message)
		assert.Equal(t, `HTTP response body: (not loggable: application/binary)`, hook.AllEntries()[1].Message)
	})
	t.Run("passwords are redacted", func(t *testing.T) {
		ctx := newContext("application/json", []byte(`{"username":"alice","password":"secret"}`))
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		logFunc := bodyLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return context.NoContent(http.StatusNoContent)
		})(ctx)

		assert.Equal(t, `HTTP request body: {"password":"(redacted)","username":"alice"}`, hook.AllEntries()[0].Message)
	})
	t.Run("form passwords are redacted", func(t *testing.T) {
		ctx := newContext("application/x-www-form-urlencoded", []byte("username=alice&password=secret"))
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		logFunc := bodyLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return context.NoContent(http.StatusNoContent)
		})(ctx)

		assert.Equal(t, "HTTP request body: password=%28redacted%29&username=alice", hook.AllEntries()[0].Message)
	})
	t.Run("not logged at info level", func(t *testing.T) {
		ctx := newContext("application/json", []byte(`{"password":"secret"}`))
		logger, hook := test.NewNullLogger()
		logFunc := bodyLoggerMiddleware(noSkip, logger.WithFields(logrus.Fields{}))

		_ = logFunc(func(context echo.Context) error {
			return context.NoContent(http.StatusNoContent)
		})(ctx)

		assert.Empty(t, hook.Entries)
	})
}
