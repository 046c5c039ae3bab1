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

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/nuts-demo-credentials/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionCookie = http.Cookie{
	Name:     "SID",
	Value:    "sessionID",
	Path:     "/",
	HttpOnly: true,
	SameSite: http.SameSiteStrictMode,
}

type testCookieReader http.Cookie

func (t *testCookieReader) Cookie(name string) (*http.Cookie, error) {
	if t != nil && name == t.Name {
		return (*http.Cookie)(t), nil
	}
	return nil, http.ErrNoCookie
}

func TestMiddleware_Handle(t *testing.T) {
	t.Run("ok - session is created", func(t *testing.T) {
		instance, sessionStore := createInstance(t)
		httpResponse := httptest.NewRecorder()
		echoContext := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/signup", nil), httpResponse)

		var capturedSession *Session
		err := instance.Handle(func(c echo.Context) error {
			var err error
			capturedSession, err = GetSession(c.Request().Context())
			return err
		})(echoContext)

		assert.NoError(t, err)
		require.NotNil(t, capturedSession)
		assert.False(t, capturedSession.LoggedIn())
		assert.NotNil(t, capturedSession.Save)
		// Assert stored session
		var storedSession = new(Session)
		cookie := httpResponse.Result().Cookies()[0]
		require.NoError(t, sessionStore.Get(cookie.Value, storedSession))
		assert.Equal(t, capturedSession.ExpiresAt.Unix(), storedSession.ExpiresAt.Unix())
	})
	t.Run("ok - existing session", func(t *testing.T) {
		instance, sessionStore := createInstance(t)
		_ = sessionStore.Put(sessionCookie.Value, Session{Username: "alice", ExpiresAt: time.Now().Add(time.Hour)})
		httpResponse := httptest.NewRecorder()
		echoContext := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/user", nil), httpResponse)
		echoContext.Request().AddCookie(&sessionCookie)

		var capturedSession *Session
		err := instance.Handle(func(c echo.Context) error {
			capturedSession, _ = GetSession(c.Request().Context())
			capturedSession.SetFlow("issuance", "flow-1")
			return capturedSession.Save()
		})(echoContext)

		assert.NoError(t, err)
		require.NotNil(t, capturedSession)
		assert.Equal(t, "alice", capturedSession.Username)
		// Make sure no new cookie is set, which indicates session creation
		assert.Empty(t, httpResponse.Result().Cookies())
		var storedSession Session
		require.NoError(t, sessionStore.Get(sessionCookie.Value, &storedSession))
		assert.Equal(t, map[string]string{"issuance": "flow-1"}, storedSession.Flows)
	})
	t.Run("skip", func(t *testing.T) {
		instance, _ := createInstance(t)
		instance.Skipper = func(_ echo.Context) bool {
			return true
		}
		httpResponse := httptest.NewRecorder()
		echoContext := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), httpResponse)

		err := instance.Handle(func(c echo.Context) error {
			_, err := GetSession(c.Request().Context())
			return err
		})(echoContext)

		assert.EqualError(t, err, "no browser session found")
		assert.Empty(t, httpResponse.Result().Cookies())
	})
	t.Run("unknown session ID causes new session", func(t *testing.T) {
		instance, _ := createInstance(t)
		httpResponse := httptest.NewRecorder()
		echoContext := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/user", nil), httpResponse)
		// Session is not in storage, so a new session is created
		echoContext.Request().AddCookie(&sessionCookie)

		err := instance.Handle(func(c echo.Context) error {
			_, err := GetSession(c.Request().Context())
			return err
		})(echoContext)

		assert.NoError(t, err)
		require.Len(t, httpResponse.Result().Cookies(), 1)
		assert.NotEqual(t, sessionCookie.Value, httpResponse.Result().Cookies()[0].Value)
	})
}

func TestMiddleware_load(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		instance, sessionStore := createInstance(t)
		_ = sessionStore.Put(sessionCookie.Value, Session{Username: "alice", ExpiresAt: time.Now().Add(time.Hour)})

		actualID, actualData, err := instance.load((*testCookieReader)(&sessionCookie))

		require.NoError(t, err)
		assert.Equal(t, "alice", actualData.Username)
		assert.Equal(t, sessionCookie.Value, actualID)
	})
	t.Run("no session cookie", func(t *testing.T) {
		instance, _ := createInstance(t)

		_, actual, err := instance.load((*testCookieReader)(nil))

		assert.NoError(t, err)
		assert.Nil(t, actual)
	})
	t.Run("error - session not found", func(t *testing.T) {
		instance, _ := createInstance(t)

		_, actual, err := instance.load((*testCookieReader)(&sessionCookie))

		assert.EqualError(t, err, "unknown or expired session")
		assert.Nil(t, actual)
	})
	t.Run("error - expired", func(t *testing.T) {
		instance, sessionStore := createInstance(t)
		_ = sessionStore.Put(sessionCookie.Value, Session{Username: "alice", ExpiresAt: time.Now().Add(-time.Hour)})

		_, actual, err := instance.load((*testCookieReader)(&sessionCookie))

		assert.EqualError(t, err, "expired session")
		assert.Nil(t, actual)
	})
	t.Run("secure cookie is ignored when not secure", func(t *testing.T) {
		instance, sessionStore := createInstance(t)
		_ = sessionStore.Put(sessionCookie.Value, Session{ExpiresAt: time.Now().Add(time.Hour)})
		cookie := sessionCookie
		cookie.Name = "__Host-SID"

		_, actual, err := instance.load((*testCookieReader)(&cookie))

		assert.NoError(t, err)
		assert.Nil(t, actual)
	})
}

func TestMiddleware_createCookie(t *testing.T) {
	t.Run("secure", func(t *testing.T) {
		cookie := Middleware{TimeOut: 30 * time.Minute, Secure: true}.createCookie("sessionID")

		assert.Equal(t, "__Host-SID", cookie.Name)
		assert.Equal(t, "/", cookie.Path)
		assert.Empty(t, cookie.Domain)
		assert.Empty(t, cookie.Expires)
		assert.Equal(t, 30*time.Minute, time.Duration(cookie.MaxAge)*time.Second)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.True(t, cookie.Secure)
		assert.True(t, cookie.HttpOnly)
	})
	t.Run("plain HTTP", func(t *testing.T) {
		cookie := Middleware{TimeOut: 30 * time.Minute}.createCookie("sessionID")

		assert.Equal(t, "SID", cookie.Name)
		assert.False(t, cookie.Secure)
		assert.True(t, cookie.HttpOnly)
	})
}

func TestSession(t *testing.T) {
	session := &Session{}

	session.Login("alice")
	session.SetFlow("login", "flow-1")
	session.SetFlow("issuance", "flow-2")
	session.ClearFlow("issuance")

	assert.True(t, session.LoggedIn())
	id, ok := session.Flow("login")
	assert.True(t, ok)
	assert.Equal(t, "flow-1", id)
	_, ok = session.Flow("issuance")
	assert.False(t, ok)

	session.Logout()

	assert.False(t, session.LoggedIn())
	assert.Empty(t, session.Flows)
}

func createInstance(t *testing.T) (Middleware, storage.SessionStore) {
	store := storage.NewTestInMemorySessionDatabase(t).GetStore(time.Hour, "sessions")
	return Middleware{
		TimeOut: time.Hour,
		Store:   store,
	}, store
}
