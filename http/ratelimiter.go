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
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimiterStore keeps a token bucket per client IP.
type rateLimiterStore struct {
	mux         sync.Mutex
	limit       rate.Limit
	burst       int
	expiresIn   time.Duration
	clients     map[string]*rateLimitedClient
	lastCleanup time.Time
	timeNow     func() time.Time
}

type rateLimitedClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiterStore creates a store allowing every client limitPerInterval requests per interval, with the given burst size.
// e.g. 30 requests a minute with a burst size of 10 allows a request every 2 seconds once the burst is used.
func newRateLimiterStore(interval time.Duration, limitPerInterval rate.Limit, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limit:     limitPerInterval * rate.Every(interval),
		burst:     burst,
		expiresIn: interval,
		clients:   map[string]*rateLimitedClient{},
		timeNow:   time.Now,
	}
}

// Allow checks if the client identified by the given identifier has not exceeded its limit.
func (s *rateLimiterStore) Allow(identifier string) (bool, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	now := s.timeNow()
	client, ok := s.clients[identifier]
	if !ok {
		client = &rateLimitedClient{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[identifier] = client
	}
	client.lastSeen = now
	if now.Sub(s.lastCleanup) > s.expiresIn {
		s.cleanup(now)
	}
	return client.limiter.AllowN(now, 1), nil
}

// cleanup forgets clients that were idle for an interval: their bucket is full again.
func (s *rateLimiterStore) cleanup(now time.Time) {
	for identifier, client := range s.clients {
		if now.Sub(client.lastSeen) > s.expiresIn {
			delete(s.clients, identifier)
		}
	}
	s.lastCleanup = now
}

// newRateLimiter creates a rate limiter based on the echo middleware RateLimiter, limiting requests per client IP.
// It accepts a list of paths which will become limited. Paths are matched against the exact router path, so you can use paths that contain a variable.
func newRateLimiter(protectedPaths map[string][]string, interval time.Duration, limitPerInterval rate.Limit, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		// Returning true means skipping the middleware
		Skipper: func(c echo.Context) bool {
			for _, path := range protectedPaths[c.Request().Method] {
				if c.Path() == path {
					return false
				}
			}
			return true
		},
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return &echo.HTTPError{
				Code:     middleware.ErrExtractorError.Code,
				Message:  middleware.ErrExtractorError.Message,
				Internal: err,
			}
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return &echo.HTTPError{
				Code:     middleware.ErrRateLimitExceeded.Code,
				Message:  middleware.ErrRateLimitExceeded.Message,
				Internal: err,
			}
		},
		Store: newRateLimiterStore(interval, limitPerInterval, burst),
	})
}
