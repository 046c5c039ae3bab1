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

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIssuanceManager_Create(t *testing.T) {
	record := &user.Record{
		Username:     "alice",
		PersonalInfo: testInfo,
		Opts:         user.Opts{AgentName: "alice-agent"},
	}

	t.Run("ok", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.expectLatestSchema()
		c.expectInBandConnection()
		c.expectIssuance(agent.CredentialStateIssued)

		id, err := manager.Create("alice", "")
		require.NoError(t, err)
		flow, err := manager.Get(id)
		require.NoError(t, err)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, []Status{
			StatusCreated,
			StatusEstablishingConnection,
			StatusBuildingCredential,
			StatusIssuingCredential,
			StatusFinished,
		}, c.observer.statuses(id))
		username, _ := manager.GetUser(id)
		assert.Equal(t, "alice", username)
	})
	t.Run("connects through the user's invitation URL", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		withInvitation := *record
		withInvitation.Opts = user.Opts{AgentName: "alice-agent", InvitationURL: "https://alice.example.com/invitation"}
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(&withInvitation, nil)
		c.expectLatestSchema()
		c.agent.EXPECT().AcceptInvitation(gomock.Any(), "https://alice.example.com/invitation", gomock.Any()).
			Return(&agent.Connection{ID: "c1", State: agent.ConnectionStateInboundOffer}, nil)
		c.agent.EXPECT().WaitForConnection(gomock.Any(), "c1", c.deps.Wait).
			Return(&agent.Connection{ID: "c1", State: agent.ConnectionStateConnected, Remote: testRemote}, nil)
		c.expectIssuance(agent.CredentialStateIssued)

		id, err := manager.Create("alice", "")
		require.NoError(t, err)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, StatusFinished, flow.Status())
	})
	t.Run("missing attributes fail before connecting", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		incomplete := *record
		incomplete.PersonalInfo = user.PersonalInfo{"first_name": "Alice"}
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(&incomplete, nil)
		c.expectLatestSchema()

		id, err := manager.Create("alice", "")
		require.NoError(t, err)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.Equal(t, StatusError, flow.Status())
		assert.ErrorIs(t, flow.Err(), ErrMissingAttributes)
		assert.Equal(t, []Status{StatusCreated, StatusError}, c.observer.statuses(id))
	})
	t.Run("unknown user", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		c.users.EXPECT().Read(gomock.Any(), "bob").Return(nil, user.ErrNotFound)

		id, err := manager.Create("bob", "")
		require.NoError(t, err)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrUserNotFound)
	})
	t.Run("no credential definitions", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.agent.EXPECT().GetCredentialDefinitions(gomock.Any(), nil).Return(nil, nil)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrNoCredentialDefinitions)
	})
	t.Run("credential rejected", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.expectLatestSchema()
		c.expectInBandConnection()
		c.expectIssuance(agent.CredentialStateRejected)
		c.agent.EXPECT().DeleteCredential(gomock.Any(), "cr1").Return(nil)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrCredentialRejected)
		assert.Equal(t, StatusError, flow.Snapshot().Status)
	})
	t.Run("connection rejected", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.expectLatestSchema()
		c.agent.EXPECT().CreateConnection(gomock.Any(), agent.Target{Name: "alice-agent"}, gomock.Any()).
			Return(&agent.Connection{ID: "c1", State: agent.ConnectionStateOutboundOffer}, nil)
		c.agent.EXPECT().WaitForConnection(gomock.Any(), "c1", gomock.Any()).Return(nil, agent.ErrConnectionRejected)
		c.agent.EXPECT().DeleteConnection(gomock.Any(), "c1").Return(nil)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrConnectionFailed)
		assert.ErrorIs(t, flow.Err(), agent.ErrConnectionRejected)
	})
	t.Run("stopped while waiting for connection", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)
		waiting := make(chan struct{})
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.expectLatestSchema()
		c.agent.EXPECT().CreateConnection(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&agent.Connection{ID: "c1", State: agent.ConnectionStateOutboundOffer}, nil)
		c.agent.EXPECT().WaitForConnection(gomock.Any(), "c1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ agent.WaitOptions) (*agent.Connection, error) {
				close(waiting)
				return nil, blockUntilCancelled(ctx)
			})
		c.agent.EXPECT().DeleteConnection(gomock.Any(), "c1").Return(nil)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		<-waiting
		snapshot, _ := manager.GetStatus(id)
		require.NoError(t, manager.Delete(id))
		waitDone(t, flow)

		assert.Equal(t, StatusEstablishingConnection, snapshot.Status)
		assert.Equal(t, "c1", snapshot.ConnectionOffer.ID)
		assert.Equal(t, StatusStopped, flow.Status())
		assert.Equal(t, 1, c.observer.count(id, StatusStopped))
		assert.Zero(t, c.observer.count(id, StatusError))
	})
	t.Run("username is required", func(t *testing.T) {
		c := newTestContext(t)
		manager := NewIssuanceManager(c.registry(t, KindIssuance), c.deps)

		_, err := manager.Create(" ", "")

		assert.ErrorIs(t, err, ErrInvalidParameters)
		assert.Zero(t, manager.Len())
	})
}
