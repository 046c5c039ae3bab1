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

package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nuts-foundation/nuts-demo-credentials/agent/log"
)

// DefaultWaitOptions are the wait bounds used when none are configured: 30 attempts, 3 seconds apart.
var DefaultWaitOptions = WaitOptions{
	Attempts: 30,
	Interval: 3 * time.Second,
}

var errNotReady = errors.New("not ready")

// Poll calls fetch until it reports done, for at most options.Attempts times with options.Interval in between.
// An error returned by fetch is a hard failure and stops polling. When all attempts are exhausted it fails with ErrWaitTimeout.
// Polling stops immediately when the context is cancelled.
func Poll[T any](ctx context.Context, options WaitOptions, fetch func(ctx context.Context) (T, bool, error)) (T, error) {
	attempts := options.Attempts
	if attempts == 0 {
		// 0 means unlimited for retry-go, which would make the wait unbounded
		attempts = 1
	}
	result, err := retry.DoWithData(func() (T, error) {
		value, done, err := fetch(ctx)
		if err != nil {
			return value, retry.Unrecoverable(err)
		}
		if !done {
			return value, errNotReady
		}
		return value, nil
	},
		retry.Attempts(attempts),
		retry.Delay(options.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Logger().Tracef("Polling agent, attempt %d/%d", n+1, attempts)
		}),
	)
	if errors.Is(err, errNotReady) {
		var empty T
		return empty, fmt.Errorf("%w (gave up after %d attempts)", ErrWaitTimeout, attempts)
	}
	return result, err
}
