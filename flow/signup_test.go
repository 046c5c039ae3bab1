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
	"errors"
	"testing"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/proof"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignupManager_Create(t *testing.T) {
	ctx := context.Background()
	signupSchema := &agent.ProofSchema{Name: "Signup", Version: "1.0"}
	params := SignupParams{
		Username:   "alice",
		Password:   "secret",
		Connection: ConnectionParams{Method: ConnectInBand, AgentName: "alice-agent"},
	}

	setup := func(t *testing.T) (*testContext, *proof.MockSignupHelper, *SignupManager) {
		c := newTestContext(t)
		helper := proof.NewMockSignupHelper(gomock.NewController(t))
		return c, helper, NewSignupManager(c.registry(t, KindSignup), c.deps, helper)
	}
	expectProofRequest := func(c *testContext, helper *proof.MockSignupHelper) *agent.Verification {
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(nil, user.ErrNotFound)
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(signupSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), *signupSchema).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.expectInBandConnection()
		return c.expectProof("ps1")
	}

	t.Run("ok", func(t *testing.T) {
		c, helper, manager := setup(t)
		verification := expectProofRequest(c, helper)
		helper.EXPECT().CheckProof(gomock.Any(), *verification, nil).Return(nil)
		helper.EXPECT().ProofToUserRecord(gomock.Any(), *verification).Return(testInfo, nil)
		c.expectLatestSchema()
		c.users.EXPECT().Create(gomock.Any(), "alice", "secret", testInfo, user.Opts{AgentName: "alice-agent"}).
			Return(&user.Record{Username: "alice"}, nil)
		c.expectIssuance(agent.CredentialStateIssued)

		id, err := manager.Create(ctx, params)
		require.NoError(t, err)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, []Status{
			StatusCreated,
			StatusEstablishingConnection,
			StatusCheckingCredential,
			StatusBuildingCredential,
			StatusIssuingCredential,
			StatusFinished,
		}, c.observer.statuses(id))
		username, _ := manager.GetUser(id)
		assert.Equal(t, "alice", username)
	})
	t.Run("proof doesn't satisfy account rules", func(t *testing.T) {
		c, helper, manager := setup(t)
		expectProofRequest(c, helper)
		helper.EXPECT().CheckProof(gomock.Any(), gomock.Any(), nil).
			Return(errors.New("accounts can only be opened by residents of the United States (country=Canada)"))
		c.agent.EXPECT().DeleteVerification(gomock.Any(), "v1").Return(nil)

		id, _ := manager.Create(ctx, params)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.Equal(t, StatusError, flow.Status())
		assert.ErrorIs(t, flow.Err(), ErrProofInvalid)
		assert.Contains(t, flow.Snapshot().Reason, "residents of the United States")
	})
	t.Run("credential not issued removes account", func(t *testing.T) {
		c, helper, manager := setup(t)
		expectProofRequest(c, helper)
		helper.EXPECT().CheckProof(gomock.Any(), gomock.Any(), nil).Return(nil)
		helper.EXPECT().ProofToUserRecord(gomock.Any(), gomock.Any()).Return(testInfo, nil)
		c.expectLatestSchema()
		c.users.EXPECT().Create(gomock.Any(), "alice", "secret", testInfo, gomock.Any()).Return(&user.Record{Username: "alice"}, nil)
		c.expectIssuance(agent.CredentialStateFailed)
		c.agent.EXPECT().DeleteCredential(gomock.Any(), "cr1").Return(nil)
		c.users.EXPECT().Delete(gomock.Any(), "alice").Return(nil)

		id, _ := manager.Create(ctx, params)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrCredentialRejected)
	})
	t.Run("username taken while signing up", func(t *testing.T) {
		c, helper, manager := setup(t)
		expectProofRequest(c, helper)
		helper.EXPECT().CheckProof(gomock.Any(), gomock.Any(), nil).Return(nil)
		helper.EXPECT().ProofToUserRecord(gomock.Any(), gomock.Any()).Return(testInfo, nil)
		c.expectLatestSchema()
		c.renderer.EXPECT().CreateCardFront(gomock.Any()).Return("data:image/svg+xml;base64,AAAA", nil)
		c.users.EXPECT().Create(gomock.Any(), "alice", "secret", testInfo, gomock.Any()).Return(nil, user.ErrExists)

		id, _ := manager.Create(ctx, params)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrUserExists)
	})
	t.Run("scanned code stores remote agent name", func(t *testing.T) {
		c, helper, manager := setup(t)
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(nil, user.ErrNotFound)
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(signupSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), gomock.Any()).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.agent.EXPECT().GetConnections(gomock.Any(), gomock.Any()).Return([]agent.Connection{
			{ID: "c1", State: agent.ConnectionStateInboundOffer},
		}, nil)
		c.agent.EXPECT().AcceptConnection(gomock.Any(), "c1", gomock.Any()).Return(&agent.Connection{ID: "c1"}, nil)
		c.agent.EXPECT().WaitForConnection(gomock.Any(), "c1", gomock.Any()).
			Return(&agent.Connection{ID: "c1", State: agent.ConnectionStateConnected, Remote: testRemote}, nil)
		c.expectProof("ps1")
		helper.EXPECT().CheckProof(gomock.Any(), gomock.Any(), nil).Return(nil)
		helper.EXPECT().ProofToUserRecord(gomock.Any(), gomock.Any()).Return(testInfo, nil)
		c.expectLatestSchema()
		c.users.EXPECT().Create(gomock.Any(), "alice", "secret", testInfo, user.Opts{AgentName: "alice-agent", MobileUser: true}).
			Return(&user.Record{Username: "alice"}, nil)
		c.expectIssuance(agent.CredentialStateIssued)

		id, _ := manager.Create(ctx, SignupParams{
			Username:   "alice",
			Password:   "secret",
			Connection: ConnectionParams{Method: ConnectQR, Nonce: "n1"},
		})
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, 1, c.observer.count(id, StatusWaitingForOffer))
	})
	t.Run("invalid parameters", func(t *testing.T) {
		_, _, manager := setup(t)

		_, err := manager.Create(ctx, SignupParams{Username: "alice", Connection: params.Connection})
		assert.ErrorIs(t, err, ErrInvalidParameters)

		_, err = manager.Create(ctx, SignupParams{Username: "alice", Password: "secret", Connection: ConnectionParams{Method: ConnectInBand}})
		assert.ErrorIs(t, err, ErrInvalidParameters)
		assert.Zero(t, manager.Len())
	})
	t.Run("existing user", func(t *testing.T) {
		c, _, manager := setup(t)
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(&user.Record{Username: "alice"}, nil)

		_, err := manager.Create(ctx, params)

		assert.ErrorIs(t, err, ErrUserExists)
		assert.Zero(t, manager.Len())
	})
}
