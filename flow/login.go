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
	"fmt"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/proof"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

// LoginConfig configures login flows.
type LoginConfig struct {
	// RestrictToIssuer requires the proof to be backed by our own newest credential definition.
	RestrictToIssuer bool
}

// NewLoginManager creates a manager for login flows, keeping them in the given registry.
func NewLoginManager(registry *Registry, deps Dependencies, helper proof.Helper, config LoginConfig) *LoginManager {
	return &LoginManager{
		Registry: registry,
		deps:     deps,
		helper:   helper,
		config:   config,
	}
}

// LoginManager logs in users with a proof from their wallet.
type LoginManager struct {
	*Registry
	deps   Dependencies
	helper proof.Helper
	config LoginConfig
}

// Create starts a login and returns the ID of the flow. The username may be empty when logging in with a scanned code
// (nonce), the user is then looked up by the name of the agent that answered.
func (m *LoginManager) Create(username string, nonce string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" && nonce == "" {
		return "", errorf(CodeInvalidParameters, "username is required, unless logging in with a scanned code")
	}
	flow := newFlow(KindLogin, username, m.deps.Observer)
	m.add(flow)
	flow.start(func(ctx context.Context) error {
		return m.login(ctx, steps{Dependencies: m.deps, flow: flow}, username, nonce)
	})
	flow.logger().Info("Login started")
	return flow.ID(), nil
}

func (m *LoginManager) login(ctx context.Context, s steps, username string, nonce string) error {
	var record *user.Record
	params := ConnectionParams{Method: ConnectQR, Nonce: nonce}
	if username != "" {
		var err error
		if record, err = readUser(ctx, s.Users, username); err != nil {
			return err
		}
		if params, err = connectionParamsForUser(record.Opts, nonce); err != nil {
			return err
		}
	}

	var restrictions []agent.Restriction
	if m.config.RestrictToIssuer {
		definition, err := s.latestDefinition(ctx)
		if err != nil {
			return err
		}
		restrictions = []agent.Restriction{{CredDefID: definition.ID}}
	}
	proofSchemaID, err := publishProofSchema(ctx, s, m.helper, restrictions)
	if err != nil {
		return err
	}

	l, err := s.connect(ctx, params, WatchConnection|WatchVerification)
	if err != nil {
		return err
	}
	verification, err := s.requestProof(ctx, l, proofSchemaID)
	if err != nil {
		return err
	}
	if record == nil {
		if record, err = s.Users.ReadByAgentName(ctx, l.remote.Name); err != nil {
			s.deleteVerification(ctx, verification.ID)
			if errors.Is(err, user.ErrNotFound) {
				return errorf(CodeUserNotFound, "no user with agent name: %s", l.remote.Name)
			}
			return fmt.Errorf("unable to read user: %w", err)
		}
		s.flow.setUser(record.Username)
	}
	if err = m.helper.CheckProof(ctx, *verification, record.PersonalInfo); err != nil {
		s.deleteVerification(ctx, verification.ID)
		return errorf(CodeProofInvalid, "proof is invalid: %w", err)
	}
	return nil
}

// publishProofSchema builds a proof schema with the helper and publishes it to our agent, returning its ID.
func publishProofSchema(ctx context.Context, s steps, helper proof.Helper, restrictions []agent.Restriction) (string, error) {
	schema, err := helper.GetProofSchema(ctx, restrictions)
	if err != nil {
		return "", fmt.Errorf("unable to build proof schema: %w", err)
	}
	published, err := s.Agent.CreateProofSchema(ctx, *schema)
	if err != nil {
		return "", fmt.Errorf("unable to publish proof schema: %w", err)
	}
	return published.ID, nil
}
