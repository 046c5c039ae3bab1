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
)

// ErrNotFound is returned when the agent has no record with the requested ID.
var ErrNotFound = errors.New("agent record not found")

// ErrWaitTimeout is returned when a wait operation exhausted its attempts.
var ErrWaitTimeout = errors.New("took too long")

// ErrConnectionRejected is returned when waiting for a connection that was rejected by the remote agent.
var ErrConnectionRejected = errors.New("connection rejected")

// Agent is the capability surface of the cloud agent that holds our identity and wallet.
// All operations are calls to a separate process and fail by returning an error.
type Agent interface {
	// GetCredentialDefinitions returns the credential definitions published by our agent,
	// or the ones matching the given filter (e.g. owner_did) when it's not empty.
	GetCredentialDefinitions(ctx context.Context, filter map[string]string) ([]CredentialDefinition, error)
	// GetCredentialSchema returns the schema with the given ID.
	GetCredentialSchema(ctx context.Context, id string) (*Schema, error)

	// CreateConnection sends a connection offer to the given target.
	CreateConnection(ctx context.Context, to Target, properties Properties) (*Connection, error)
	// AcceptInvitation accepts an invitation posted by a remote agent.
	AcceptInvitation(ctx context.Context, invitationURL string, properties Properties) (*Connection, error)
	// AcceptConnection accepts an inbound connection offer.
	AcceptConnection(ctx context.Context, id string, properties Properties) (*Connection, error)
	// GetConnection returns the connection with the given ID.
	GetConnection(ctx context.Context, id string) (*Connection, error)
	// GetConnections returns the connections matching the given query.
	GetConnections(ctx context.Context, query map[string]string) ([]Connection, error)
	// DeleteConnection deletes the connection with the given ID.
	DeleteConnection(ctx context.Context, id string) error
	// WaitForConnection polls the connection until it's established.
	// It fails with ErrConnectionRejected when the remote agent rejected the offer, or ErrWaitTimeout.
	WaitForConnection(ctx context.Context, id string, options WaitOptions) (*Connection, error)

	// CreateVerification creates a verification with the given target, in the given (initial) state.
	CreateVerification(ctx context.Context, to Target, proofSchemaID string, state VerificationState, properties Properties) (*Verification, error)
	// UpdateVerification moves the verification to the given state, e.g. to turn an inbound verification request into a proof request.
	UpdateVerification(ctx context.Context, id string, state VerificationState, proofSchemaID string) (*Verification, error)
	// GetVerification returns the verification with the given ID.
	GetVerification(ctx context.Context, id string) (*Verification, error)
	// GetVerifications returns the verifications matching the given query.
	GetVerifications(ctx context.Context, query map[string]string) ([]Verification, error)
	// DeleteVerification deletes the verification with the given ID.
	DeleteVerification(ctx context.Context, id string) error
	// WaitForVerification polls the verification until it reaches a final state (passed, failed or rejected) and returns it.
	WaitForVerification(ctx context.Context, id string, options WaitOptions) (*Verification, error)

	// OfferCredential offers a credential of the given credential definition to the target.
	OfferCredential(ctx context.Context, to Target, credDefID string, attributes map[string]string, properties Properties) (*Credential, error)
	// GetCredential returns the credential with the given ID.
	GetCredential(ctx context.Context, id string) (*Credential, error)
	// GetCredentials returns the credentials matching the given query.
	GetCredentials(ctx context.Context, query map[string]string) ([]Credential, error)
	// DeleteCredential deletes the credential with the given ID.
	DeleteCredential(ctx context.Context, id string) error
	// WaitForCredential polls the credential until it reaches a final state (issued, rejected or failed) and returns it.
	WaitForCredential(ctx context.Context, id string, options WaitOptions) (*Credential, error)

	// CreateProofSchema publishes a proof schema, returning it with its assigned ID.
	CreateProofSchema(ctx context.Context, schema ProofSchema) (*ProofSchema, error)
	// CreateInvitation creates an invitation remote agents can accept to connect to our agent.
	CreateInvitation(ctx context.Context, request InvitationRequest) (*Invitation, error)
}
