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
	"fmt"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

// ConnectionMethod selects how a flow connects to the holder's agent.
type ConnectionMethod string

const (
	// ConnectInBand sends a connection offer to the holder's agent by name.
	ConnectInBand ConnectionMethod = "in_band"
	// ConnectInvitation accepts an invitation posted by the holder's agent.
	ConnectInvitation ConnectionMethod = "invitation"
	// ConnectQR waits for the holder's agent to contact us with the nonce of a scanned code.
	ConnectQR ConnectionMethod = "qr"
)

// ConnectionParams specifies how to connect to the holder's agent.
type ConnectionParams struct {
	Method        ConnectionMethod
	AgentName     string
	InvitationURL string
	Nonce         string
}

func (p ConnectionParams) validate() error {
	switch p.Method {
	case ConnectInBand:
		if p.AgentName == "" {
			return errorf(CodeInvalidParameters, "agent name is required to connect in-band")
		}
	case ConnectInvitation:
		if p.InvitationURL == "" {
			return errorf(CodeInvalidParameters, "invitation URL is required to connect out-of-band")
		}
	case ConnectQR:
		if p.Nonce == "" {
			return errorf(CodeInvalidParameters, "nonce is required to connect with a scanned code")
		}
	default:
		return errorf(CodeInvalidParameters, "unknown connection method: %s", p.Method)
	}
	return nil
}

// connectionParamsForUser connects with a scanned code when a nonce is given, otherwise through the user's invitation
// URL or agent name, in that order.
func connectionParamsForUser(opts user.Opts, nonce string) (ConnectionParams, error) {
	switch {
	case nonce != "":
		return ConnectionParams{Method: ConnectQR, Nonce: nonce}, nil
	case opts.InvitationURL != "":
		return ConnectionParams{Method: ConnectInvitation, InvitationURL: opts.InvitationURL}, nil
	case opts.AgentName != "":
		return ConnectionParams{Method: ConnectInBand, AgentName: opts.AgentName}, nil
	default:
		return ConnectionParams{}, errorf(CodeInvalidParameters, "user has no agent name or invitation URL")
	}
}

// link is an established channel to the holder's agent. When the holder contacted us with a proof request,
// verification holds that request.
type link struct {
	target       agent.Target
	remote       agent.Remote
	verification *agent.Verification
}

// connect establishes a connection using the given method. Connection offers that don't result in a connection are deleted.
func (s steps) connect(ctx context.Context, params ConnectionParams, watch WatchType) (*link, error) {
	properties := s.properties()
	switch params.Method {
	case ConnectQR:
		s.flow.setStatus(StatusWaitingForOffer)
		request, err := NewNonceWatcher(s.Agent, params.Nonce, watch, s.Wait).Watch(ctx)
		if err != nil {
			return nil, errorf(CodeConnectionFailed, "no request received for scanned code: %w", err)
		}
		if request.Verification != nil {
			if request.Verification.To == nil {
				s.deleteVerification(ctx, request.Verification.ID)
				return nil, errorf(CodeConnectionFailed, "inbound verification request has no remote (id=%s)", request.Verification.ID)
			}
			s.flow.logger().WithField(core.LogFieldVerificationID, request.Verification.ID).Info("Received inbound verification request")
			return &link{
				target:       request.Verification.To.Target(),
				remote:       *request.Verification.To,
				verification: request.Verification,
			}, nil
		}
		if request.Connection == nil {
			return nil, errorf(CodeConnectionFailed, "unexpected inbound request for scanned code")
		}
		s.flow.setStatus(StatusEstablishingConnection)
		s.flow.setConnectionOffer(request.Connection)
		if _, err = s.Agent.AcceptConnection(ctx, request.Connection.ID, properties); err != nil {
			s.cleanup(ctx, "connection", request.Connection.ID, s.Agent.DeleteConnection)
			return nil, errorf(CodeConnectionFailed, "unable to accept connection: %w", err)
		}
		return s.waitForConnection(ctx, request.Connection.ID)
	case ConnectInvitation:
		s.flow.setStatus(StatusEstablishingConnection)
		offer, err := s.Agent.AcceptInvitation(ctx, params.InvitationURL, properties)
		if err != nil {
			return nil, errorf(CodeConnectionFailed, "unable to accept invitation: %w", err)
		}
		s.flow.setConnectionOffer(offer)
		return s.waitForConnection(ctx, offer.ID)
	case ConnectInBand:
		s.flow.setStatus(StatusEstablishingConnection)
		offer, err := s.Agent.CreateConnection(ctx, agent.Target{Name: params.AgentName}, properties)
		if err != nil {
			return nil, errorf(CodeConnectionFailed, "unable to send connection offer: %w", err)
		}
		s.flow.setConnectionOffer(offer)
		return s.waitForConnection(ctx, offer.ID)
	default:
		return nil, errorf(CodeInvalidParameters, "unknown connection method: %s", params.Method)
	}
}

func (s steps) waitForConnection(ctx context.Context, id string) (*link, error) {
	connection, err := s.Agent.WaitForConnection(ctx, id, s.Wait)
	if err != nil {
		s.cleanup(ctx, "connection", id, s.Agent.DeleteConnection)
		return nil, errorf(CodeConnectionFailed, "connection was not established: %w", err)
	}
	s.flow.setConnectionOffer(connection)
	s.flow.logger().WithField(core.LogFieldConnectionID, connection.ID).Info("Connection established")
	return &link{
		target: connection.Remote.Target(),
		remote: connection.Remote,
	}, nil
}

// requestProof requests a proof over the link and waits for it to pass. An inbound verification request found by
// the nonce watcher is turned into an outbound proof request instead. A verification that didn't pass is deleted.
func (s steps) requestProof(ctx context.Context, l *link, proofSchemaID string) (*agent.Verification, error) {
	s.flow.setStatus(StatusCheckingCredential)
	var verification *agent.Verification
	var err error
	if l.verification != nil {
		verification, err = s.Agent.UpdateVerification(ctx, l.verification.ID, agent.VerificationStateOutboundProofRequest, proofSchemaID)
		if err != nil {
			s.deleteVerification(ctx, l.verification.ID)
			return nil, fmt.Errorf("unable to update verification request: %w", err)
		}
	} else {
		verification, err = s.Agent.CreateVerification(ctx, l.target, proofSchemaID, agent.VerificationStateOutboundProofRequest, s.properties())
		if err != nil {
			return nil, fmt.Errorf("unable to send proof request: %w", err)
		}
	}
	s.flow.setVerification(verification)
	s.flow.logger().WithField(core.LogFieldVerificationID, verification.ID).Debug("Proof requested")

	result, err := s.Agent.WaitForVerification(ctx, verification.ID, s.Wait)
	if err != nil {
		s.deleteVerification(ctx, verification.ID)
		return nil, errorf(CodeProofRejected, "proof was not received: %w", err)
	}
	s.flow.setVerification(result)
	if result.State != agent.VerificationStatePassed {
		s.deleteVerification(ctx, verification.ID)
		return nil, errorf(CodeProofRejected, "proof request ended in state %s", result.State)
	}
	return result, nil
}
