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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoll(t *testing.T) {
	options := WaitOptions{Attempts: 5, Interval: time.Millisecond}

	t.Run("done on first attempt", func(t *testing.T) {
		calls := 0
		result, err := Poll(context.Background(), options, func(_ context.Context) (string, bool, error) {
			calls++
			return "ok", true, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})
	t.Run("done after retries", func(t *testing.T) {
		calls := 0
		result, err := Poll(context.Background(), options, func(_ context.Context) (int, bool, error) {
			calls++
			return calls, calls == 3, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result)
	})
	t.Run("exhausted", func(t *testing.T) {
		calls := 0
		_, err := Poll(context.Background(), options, func(_ context.Context) (int, bool, error) {
			calls++
			return 0, false, nil
		})

		assert.ErrorIs(t, err, ErrWaitTimeout)
		assert.EqualError(t, err, "took too long (gave up after 5 attempts)")
		assert.Equal(t, 5, calls)
	})
	t.Run("error is not retried", func(t *testing.T) {
		calls := 0
		failure := errors.New("agent down")
		_, err := Poll(context.Background(), options, func(_ context.Context) (int, bool, error) {
			calls++
			return 0, false, failure
		})

		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 1, calls)
	})
	t.Run("zero attempts polls once", func(t *testing.T) {
		calls := 0
		_, err := Poll(context.Background(), WaitOptions{}, func(_ context.Context) (int, bool, error) {
			calls++
			return 0, false, nil
		})

		assert.ErrorIs(t, err, ErrWaitTimeout)
		assert.Equal(t, 1, calls)
	})
	t.Run("cancelled context stops polling", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		_, err := Poll(ctx, WaitOptions{Attempts: 100, Interval: 10 * time.Millisecond}, func(_ context.Context) (int, bool, error) {
			calls++
			if calls == 2 {
				cancel()
			}
			return 0, false, nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, calls, 100)
	})
}
