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
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nuts-foundation/nuts-demo-credentials/http/log"
	"github.com/nuts-foundation/nuts-demo-credentials/storage"
)

type contextKey struct{}

// secureCookieName uses the __Host prefix, that instructs the user agent to only accept the cookie when it's
// set with the Secure attribute, from an HTTPS uri, without a Domain and with Path=/.
const secureCookieName = "__Host-SID"

// cookieName is used when the application is served over plain HTTP, e.g. during development.
const cookieName = "SID"

// Middleware is Echo middleware that ensures a browser session is available in the request context (unless skipped).
// If no session is available, a new session is created.
type Middleware struct {
	// Skipper defines a function to skip middleware.
	Skipper middleware.Skipper
	// TimeOut is the maximum lifetime of a session.
	TimeOut time.Duration
	// Store is the session store to use for storing sessions.
	Store storage.SessionStore
	// Secure marks the session cookie as HTTPS-only.
	Secure bool
}

// Handle loads or creates the session and puts it in the request context.
func (m Middleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(echoCtx echo.Context) error {
		if m.Skipper != nil && m.Skipper(echoCtx) {
			return next(echoCtx)
		}

		sessionID, session, err := m.load(echoCtx)
		if err != nil {
			// Should only really occur in exceptional circumstances (e.g. cookie survived after intended max age).
			log.Logger().WithError(err).Info("Invalid browser session, a new session will be created")
		}
		if session == nil {
			sessionID = uuid.NewString()
			session = &Session{ExpiresAt: time.Now().Add(m.TimeOut)}
			if err := m.Store.Put(sessionID, session); err != nil {
				return fmt.Errorf("create browser session: %w", err)
			}
			echoCtx.SetCookie(m.createCookie(sessionID))
		}
		session.Save = func() error {
			return m.Store.Put(sessionID, session)
		}
		echoCtx.SetRequest(echoCtx.Request().WithContext(context.WithValue(echoCtx.Request().Context(), contextKey{}, session)))
		return next(echoCtx)
	}
}

// load loads the session given the session ID in the cookie.
// If there is no session cookie (first visit, or the session expired), nil is returned.
func (m Middleware) load(cookies CookieReader) (string, *Session, error) {
	cookie, err := cookies.Cookie(m.cookieName())
	if err != nil {
		// Cookie only returns http.ErrNoCookie
		return "", nil, nil
	}
	session := new(Session)
	sessionID := cookie.Value
	if err = m.Store.Get(sessionID, session); errors.Is(err, storage.ErrNotFound) {
		return "", nil, errors.New("unknown or expired session")
	} else if err != nil {
		return "", nil, fmt.Errorf("invalid browser session: %w", err)
	}
	if session.ExpiresAt.Before(time.Now()) {
		// Saving a session resets its TTL in the store, so it can outlive its max lifetime.
		return "", nil, errors.New("expired session")
	}
	return sessionID, session, nil
}

func (m Middleware) cookieName() string {
	if m.Secure {
		return secureCookieName
	}
	return cookieName
}

func (m Middleware) createCookie(sessionID string) *http.Cookie {
	// Do not set Expires: then it isn't a session cookie anymore.
	return &http.Cookie{
		Name:     m.cookieName(),
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.TimeOut.Seconds()),
		Secure:   m.Secure,
		HttpOnly: true,                    // do not let JavaScript interact with the cookie
		SameSite: http.SameSiteStrictMode, // do not allow the cookie to be sent with cross-site requests
	}
}

// GetSession retrieves the browser session from the request context.
// If the session is not found, an error is returned.
func GetSession(ctx context.Context) (*Session, error) {
	result, ok := ctx.Value(contextKey{}).(*Session)
	if !ok {
		return nil, errors.New("no browser session found")
	}
	return result, nil
}

// Session holds the state of a browser: the logged-in user and the flows it started.
type Session struct {
	// Save is a function that persists the session.
	Save func() error `json:"-"`
	// Username is the logged-in user, empty when not logged in.
	Username string `json:"username,omitempty"`
	// Flows holds the ID of the last flow started in this session, per flow kind.
	Flows     map[string]string `json:"flows,omitempty"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// LoggedIn returns whether a user is logged in.
func (s *Session) LoggedIn() bool {
	return s.Username != ""
}

// Login marks the given user as logged in.
func (s *Session) Login(username string) {
	s.Username = username
}

// Logout forgets the logged-in user and the flows started in the session.
func (s *Session) Logout() {
	s.Username = ""
	s.Flows = nil
}

// Flow returns the ID of the flow of the given kind started in this session.
func (s *Session) Flow(kind string) (string, bool) {
	id, ok := s.Flows[kind]
	return id, ok
}

// SetFlow stores the ID of the flow of the given kind, replacing any earlier flow of that kind.
func (s *Session) SetFlow(kind string, id string) {
	if s.Flows == nil {
		s.Flows = map[string]string{}
	}
	s.Flows[kind] = id
}

// ClearFlow forgets the flow of the given kind.
func (s *Session) ClearFlow(kind string) {
	delete(s.Flows, kind)
}

// CookieReader is an interface for reading cookies from an HTTP request.
// It is implemented by echo.Context and http.Request.
type CookieReader interface {
	// Cookie returns the named cookie provided in the request.
	Cookie(name string) (*http.Cookie, error)
}
