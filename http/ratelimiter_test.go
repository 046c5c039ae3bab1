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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	t.Run("it works", func(t *testing.T) {
		e := echo.New()
		rlMiddleware := newRateLimiter(map[string][]string{http.MethodPost: {"/foo"}}, time.Minute, 30, 2)

		handler := func(c echo.Context) error {
			return c.String(http.StatusOK, "test")
		}

		testcases := []struct {
			method            string
			expectedStatus    int
			waitBeforeRequest time.Duration
			path              string
			remoteAddr        string
		}{
			{http.MethodPost, http.StatusOK, 0, "/foo", "10.0.0.1:1234"},               // first request in burst
			{http.MethodPost, http.StatusOK, 0, "/foo", "10.0.0.1:1234"},               // second request in burst
			{http.MethodPost, http.StatusTooManyRequests, 0, "/foo", "10.0.0.1:1234"},  // bucket empty
			{http.MethodPost, http.StatusOK, 0, "/foo", "10.0.0.2:1234"},               // other client has its own bucket
			{http.MethodPost, http.StatusOK, 0, "/other", "10.0.0.1:1234"},             // unprotected path should still work
			{http.MethodGet, http.StatusOK, 0, "/foo", "10.0.0.1:1234"},                // other method same path should still work
			{http.MethodPost, http.StatusTooManyRequests, 0, "/foo", "10.0.0.1:1234"},  // check bucket still empty
			{http.MethodPost, http.StatusOK, 2 * time.Second, "/foo", "10.0.0.1:1234"}, // wait 2 seconds to refill bucket
			{http.MethodPost, http.StatusTooManyRequests, 0, "/foo", "10.0.0.1:1234"},  // bucket empty again
		}

		for _, testcase := range testcases {
			time.Sleep(testcase.waitBeforeRequest)
			req := httptest.NewRequest(testcase.method, testcase.path, nil)
			req.RemoteAddr = testcase.remoteAddr
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath(testcase.path)
			_ = rlMiddleware(handler)(c)
			assert.Equalf(t, testcase.expectedStatus, rec.Code, "unexpected HTTP response for %s on %s", testcase.method, testcase.path)
		}
	})
}

func TestRateLimiterStore_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(time.Minute, 1, 1)
	store.timeNow = func() time.Time {
		return now
	}

	allowed, err := store.Allow("a")
	assert.NoError(t, err)
	assert.True(t, allowed)
	allowed, _ = store.Allow("a")
	assert.False(t, allowed)
	allowed, _ = store.Allow("b")
	assert.True(t, allowed)

	t.Run("idle clients are forgotten", func(t *testing.T) {
		now = now.Add(2 * time.Minute)

		allowed, _ = store.Allow("a")

		assert.True(t, allowed)
		assert.Len(t, store.clients, 1)
		assert.Contains(t, store.clients, "a")
	})
}
