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

func TestLoginManager_Create(t *testing.T) {
	record := &user.Record{
		Username:     "alice",
		PersonalInfo: testInfo,
		Opts:         user.Opts{AgentName: "alice-agent"},
	}
	loginSchema := &agent.ProofSchema{Name: "Login", Version: "1.0"}

	setup := func(t *testing.T, config LoginConfig) (*testContext, *proof.MockHelper, *LoginManager) {
		c := newTestContext(t)
		helper := proof.NewMockHelper(gomock.NewController(t))
		return c, helper, NewLoginManager(c.registry(t, KindLogin), c.deps, helper, config)
	}

	t.Run("in-band", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{})
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(loginSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), *loginSchema).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.expectInBandConnection()
		verification := c.expectProof("ps1")
		helper.EXPECT().CheckProof(gomock.Any(), *verification, testInfo).Return(nil)

		id, err := manager.Create("alice", "")
		require.NoError(t, err)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, []Status{
			StatusCreated,
			StatusEstablishingConnection,
			StatusCheckingCredential,
			StatusFinished,
		}, c.observer.statuses(id))
		username, _ := manager.GetUser(id)
		assert.Equal(t, "alice", username)
	})
	t.Run("scanned code without username", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{})
		query := map[string]string{"properties.nonce": "n1"}
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(loginSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), gomock.Any()).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.agent.EXPECT().GetConnections(gomock.Any(), query).Return(nil, nil)
		c.agent.EXPECT().GetVerifications(gomock.Any(), query).Return([]agent.Verification{{
			ID:    "v0",
			State: agent.VerificationStateInboundVerificationRequest,
			To:    &testRemote,
		}}, nil)
		c.agent.EXPECT().UpdateVerification(gomock.Any(), "v0", agent.VerificationStateOutboundProofRequest, "ps1").
			Return(&agent.Verification{ID: "v0", State: agent.VerificationStateOutboundProofRequest}, nil)
		passed := agent.Verification{ID: "v0", State: agent.VerificationStatePassed}
		c.agent.EXPECT().WaitForVerification(gomock.Any(), "v0", gomock.Any()).Return(&passed, nil)
		c.users.EXPECT().ReadByAgentName(gomock.Any(), "alice-agent").Return(record, nil)
		helper.EXPECT().CheckProof(gomock.Any(), passed, testInfo).Return(nil)

		id, err := manager.Create("", "n1")
		require.NoError(t, err)
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, []Status{
			StatusCreated,
			StatusWaitingForOffer,
			StatusCheckingCredential,
			StatusFinished,
		}, c.observer.statuses(id))
		username, _ := manager.GetUser(id)
		assert.Equal(t, "alice", username)
	})
	t.Run("scanned code of unknown agent", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{})
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(loginSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), gomock.Any()).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.agent.EXPECT().GetConnections(gomock.Any(), gomock.Any()).Return([]agent.Connection{
			{ID: "c1", State: agent.ConnectionStateInboundOffer},
		}, nil)
		c.agent.EXPECT().AcceptConnection(gomock.Any(), "c1", gomock.Any()).Return(&agent.Connection{ID: "c1"}, nil)
		c.agent.EXPECT().WaitForConnection(gomock.Any(), "c1", gomock.Any()).
			Return(&agent.Connection{ID: "c1", State: agent.ConnectionStateConnected, Remote: testRemote}, nil)
		c.expectProof("ps1")
		c.users.EXPECT().ReadByAgentName(gomock.Any(), "alice-agent").Return(nil, user.ErrNotFound)
		c.agent.EXPECT().DeleteVerification(gomock.Any(), "v1").Return(nil)

		id, _ := manager.Create("", "n1")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrUserNotFound)
		assert.Equal(t, []Status{
			StatusCreated,
			StatusWaitingForOffer,
			StatusEstablishingConnection,
			StatusCheckingCredential,
			StatusError,
		}, c.observer.statuses(id))
	})
	t.Run("restricted to our credential definition", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{RestrictToIssuer: true})
		template := proof.NewTemplateHelper(proof.Templates, proof.LoginTemplate)
		restrictions := []agent.Restriction{{CredDefID: "cd-2"}}
		var published agent.ProofSchema
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.agent.EXPECT().GetCredentialDefinitions(gomock.Any(), nil).Return([]agent.CredentialDefinition{testDefinition}, nil)
		helper.EXPECT().GetProofSchema(gomock.Any(), restrictions).
			DoAndReturn(func(ctx context.Context, restrictions []agent.Restriction) (*agent.ProofSchema, error) {
				return template.GetProofSchema(ctx, restrictions)
			})
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, schema agent.ProofSchema) (*agent.ProofSchema, error) {
				published = schema
				return &agent.ProofSchema{ID: "ps1"}, nil
			})
		c.expectInBandConnection()
		verification := c.expectProof("ps1")
		helper.EXPECT().CheckProof(gomock.Any(), *verification, testInfo).Return(nil)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		require.NoError(t, flow.Err())
		assert.Equal(t, StatusFinished, flow.Status())
		require.NotEmpty(t, published.RequestedAttributes)
		for name, attribute := range published.RequestedAttributes {
			assert.Equal(t, restrictions, attribute.Restrictions, name)
		}
	})
	t.Run("restricted, proof schema can't be built", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{RestrictToIssuer: true})
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		c.agent.EXPECT().GetCredentialDefinitions(gomock.Any(), nil).Return([]agent.CredentialDefinition{testDefinition}, nil)
		helper.EXPECT().GetProofSchema(gomock.Any(), []agent.Restriction{{CredDefID: "cd-2"}}).Return(nil, errors.New("template broken"))

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.EqualError(t, flow.Err(), "unable to build proof schema: template broken")
		assert.Equal(t, CodeUnknown, flow.Snapshot().Error)
	})
	t.Run("proof doesn't match user", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{})
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(loginSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), gomock.Any()).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.expectInBandConnection()
		c.expectProof("ps1")
		helper.EXPECT().CheckProof(gomock.Any(), gomock.Any(), testInfo).Return(errors.New("attribute does not match user record: first_name"))
		c.agent.EXPECT().DeleteVerification(gomock.Any(), "v1").Return(nil)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrProofInvalid)
		assert.Equal(t, "proof is invalid: attribute does not match user record: first_name", flow.Snapshot().Reason)
	})
	t.Run("proof rejected", func(t *testing.T) {
		c, helper, manager := setup(t, LoginConfig{})
		c.users.EXPECT().Read(gomock.Any(), "alice").Return(record, nil)
		helper.EXPECT().GetProofSchema(gomock.Any(), nil).Return(loginSchema, nil)
		c.agent.EXPECT().CreateProofSchema(gomock.Any(), gomock.Any()).Return(&agent.ProofSchema{ID: "ps1"}, nil)
		c.expectInBandConnection()
		c.agent.EXPECT().CreateVerification(gomock.Any(), testTarget, "ps1", gomock.Any(), gomock.Any()).
			Return(&agent.Verification{ID: "v1"}, nil)
		c.agent.EXPECT().WaitForVerification(gomock.Any(), "v1", gomock.Any()).
			Return(&agent.Verification{ID: "v1", State: agent.VerificationStateRejected}, nil)
		c.agent.EXPECT().DeleteVerification(gomock.Any(), "v1").Return(nil).Times(1)

		id, _ := manager.Create("alice", "")
		flow, _ := manager.Get(id)
		waitDone(t, flow)

		assert.ErrorIs(t, flow.Err(), ErrProofRejected)
	})
	t.Run("username or nonce is required", func(t *testing.T) {
		_, _, manager := setup(t, LoginConfig{})

		_, err := manager.Create("", "")

		assert.ErrorIs(t, err, ErrInvalidParameters)
	})
}
