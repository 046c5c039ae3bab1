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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startTestFlow(r *Registry, observer Observer, routine func(ctx context.Context) error) *Flow {
	flow := newFlow(r.kind, "alice", observer)
	r.add(flow)
	flow.start(routine)
	return flow
}

func noPruning() RegistryConfig {
	return RegistryConfig{TTL: time.Minute, MaxAge: time.Hour}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(KindLogin, noPruning())
	defer r.Close()
	flow := startTestFlow(r, nil, func(ctx context.Context) error {
		return nil
	})
	waitDone(t, flow)

	t.Run("ok", func(t *testing.T) {
		actual, err := r.Get(flow.ID())

		require.NoError(t, err)
		assert.Same(t, flow, actual)
	})
	t.Run("status", func(t *testing.T) {
		snapshot, err := r.GetStatus(flow.ID())

		require.NoError(t, err)
		assert.Equal(t, StatusFinished, snapshot.Status)
	})
	t.Run("user", func(t *testing.T) {
		username, err := r.GetUser(flow.ID())

		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})
	t.Run("unknown flow", func(t *testing.T) {
		_, err := r.Get("unknown")
		assert.ErrorIs(t, err, ErrFlowNotFound)
		assert.EqualError(t, err, "login flow not found (id=unknown)")

		_, err = r.GetStatus("unknown")
		assert.ErrorIs(t, err, ErrFlowNotFound)

		_, err = r.GetUser("unknown")
		assert.ErrorIs(t, err, ErrFlowNotFound)

		assert.ErrorIs(t, r.Delete("unknown"), ErrFlowNotFound)
	})
}

func TestRegistry_Delete(t *testing.T) {
	t.Run("stops running flow once", func(t *testing.T) {
		observer := &recordingObserver{}
		r := NewRegistry(KindSignup, noPruning())
		defer r.Close()
		flow := startTestFlow(r, observer, blockUntilCancelled)

		require.NoError(t, r.Delete(flow.ID()))
		waitDone(t, flow)

		assert.Equal(t, StatusStopped, flow.Status())
		assert.Equal(t, 1, observer.count(flow.ID(), StatusStopped))
		_, err := r.Get(flow.ID())
		assert.ErrorIs(t, err, ErrFlowNotFound)
		assert.ErrorIs(t, r.Delete(flow.ID()), ErrFlowNotFound)
	})
	t.Run("terminal flow isn't stopped", func(t *testing.T) {
		observer := &recordingObserver{}
		r := NewRegistry(KindSignup, noPruning())
		defer r.Close()
		flow := startTestFlow(r, observer, func(ctx context.Context) error {
			return errorf(CodeProofRejected, "rejected")
		})
		waitDone(t, flow)

		require.NoError(t, r.Delete(flow.ID()))

		assert.Equal(t, StatusError, flow.Status())
		assert.Zero(t, observer.count(flow.ID(), StatusStopped))
		assert.Zero(t, r.Len())
	})
}

func TestRegistry_prune(t *testing.T) {
	r := NewRegistry(KindIssuance, noPruning())
	defer r.Close()
	finished := startTestFlow(r, nil, func(ctx context.Context) error {
		return nil
	})
	waitDone(t, finished)
	running := startTestFlow(r, nil, blockUntilCancelled)

	t.Run("nothing expired", func(t *testing.T) {
		assert.Zero(t, r.prune(time.Now()))
		assert.Equal(t, 2, r.Len())
	})
	t.Run("terminal flow after TTL", func(t *testing.T) {
		assert.Equal(t, 1, r.prune(time.Now().Add(2*time.Minute)))

		_, err := r.Get(finished.ID())
		assert.ErrorIs(t, err, ErrFlowNotFound)
		_, err = r.Get(running.ID())
		assert.NoError(t, err)
	})
	t.Run("running flow after max age", func(t *testing.T) {
		assert.Equal(t, 1, r.prune(time.Now().Add(2*time.Hour)))
		waitDone(t, running)

		assert.Equal(t, StatusStopped, running.Status())
		assert.Zero(t, r.Len())
	})
}

func TestRegistry_Close(t *testing.T) {
	t.Run("stops pruning and running flows", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
		r := NewRegistry(KindLogin, RegistryConfig{TTL: time.Millisecond, PruneInterval: 5 * time.Millisecond})
		finished := startTestFlow(r, nil, func(ctx context.Context) error {
			return nil
		})
		waitDone(t, finished)
		running := startTestFlow(r, nil, blockUntilCancelled)

		assert.Eventually(t, func() bool {
			return r.Len() == 1
		}, 5*time.Second, 5*time.Millisecond)
		r.Close()
		waitDone(t, running)

		assert.Equal(t, StatusStopped, running.Status())
	})
}
