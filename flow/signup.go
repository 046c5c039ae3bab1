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

	"github.com/nuts-foundation/nuts-demo-credentials/proof"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

// SignupParams holds the parameters of a signup.
type SignupParams struct {
	Username   string
	Password   string
	Connection ConnectionParams
}

// NewSignupManager creates a manager for signup flows, keeping them in the given registry.
func NewSignupManager(registry *Registry, deps Dependencies, helper proof.SignupHelper) *SignupManager {
	return &SignupManager{
		Registry: registry,
		deps:     deps,
		helper:   helper,
	}
}

// SignupManager creates accounts from a proof, then issues our credential to the new user.
type SignupManager struct {
	*Registry
	deps   Dependencies
	helper proof.SignupHelper
}

// Create validates the parameters, checks the username is available and starts the signup.
// It never reuses an existing account: a taken username fails with ErrUserExists.
func (m *SignupManager) Create(ctx context.Context, params SignupParams) (string, error) {
	params.Username = strings.TrimSpace(params.Username)
	if params.Username == "" || params.Password == "" {
		return "", errorf(CodeInvalidParameters, "username and password are required")
	}
	if err := params.Connection.validate(); err != nil {
		return "", err
	}
	_, err := m.deps.Users.Read(ctx, params.Username)
	if err == nil {
		return "", errorf(CodeUserExists, "user already exists: %s", params.Username)
	}
	if !errors.Is(err, user.ErrNotFound) {
		return "", fmt.Errorf("unable to read user: %w", err)
	}

	flow := newFlow(KindSignup, params.Username, m.deps.Observer)
	m.add(flow)
	flow.start(func(ctx context.Context) error {
		return m.signup(ctx, steps{Dependencies: m.deps, flow: flow}, params)
	})
	flow.logger().Info("Signup started")
	return flow.ID(), nil
}

func (m *SignupManager) signup(ctx context.Context, s steps, params SignupParams) error {
	proofSchemaID, err := publishProofSchema(ctx, s, m.helper, nil)
	if err != nil {
		return err
	}
	l, err := s.connect(ctx, params.Connection, WatchConnection|WatchVerification)
	if err != nil {
		return err
	}
	verification, err := s.requestProof(ctx, l, proofSchemaID)
	if err != nil {
		return err
	}
	if err = m.helper.CheckProof(ctx, *verification, nil); err != nil {
		s.deleteVerification(ctx, verification.ID)
		return errorf(CodeProofInvalid, "proof is invalid: %w", err)
	}
	personalInfo, err := m.helper.ProofToUserRecord(ctx, *verification)
	if err != nil {
		s.deleteVerification(ctx, verification.ID)
		return errorf(CodeProofInvalid, "proof is invalid: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}
	s.flow.setStatus(StatusBuildingCredential)
	definition, schema, err := s.latestSchema(ctx)
	if err != nil {
		return err
	}
	attributes, err := s.buildAttributes(schema, personalInfo)
	if err != nil {
		return err
	}
	opts := user.Opts{
		AgentName:     params.Connection.AgentName,
		InvitationURL: params.Connection.InvitationURL,
		MobileUser:    params.Connection.Method == ConnectQR,
	}
	if opts.AgentName == "" {
		opts.AgentName = l.remote.Name
	}
	if _, err = s.Users.Create(ctx, params.Username, params.Password, personalInfo, opts); err != nil {
		if errors.Is(err, user.ErrExists) {
			return errorf(CodeUserExists, "user already exists: %s", params.Username)
		}
		return fmt.Errorf("unable to create user: %w", err)
	}
	s.flow.logger().Info("Account created")

	if err = s.offerCredential(ctx, l.target, definition.ID, attributes); err != nil {
		m.rollback(ctx, s, params.Username)
		return err
	}
	return nil
}

// rollback deletes the account created by a signup that failed to issue its credential.
func (m *SignupManager) rollback(ctx context.Context, s steps, username string) {
	s.cleanup(ctx, "account", username, s.Users.Delete)
}
