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
	"github.com/nuts-foundation/nuts-demo-credentials/flow/log"
)

// WatchType selects the kinds of inbound requests a NonceWatcher looks for. Types can be combined.
type WatchType uint8

const (
	WatchConnection WatchType = 1 << iota
	WatchCredential
	WatchVerification
)

const nonceQueryKey = "properties." + agent.PropertyNonce

// InboundRequest is the inbound agent record found by a NonceWatcher. Exactly one field is set.
type InboundRequest struct {
	Connection   *agent.Connection
	Credential   *agent.Credential
	Verification *agent.Verification
}

// NewNonceWatcher creates a watcher for inbound requests tagged with the given nonce.
func NewNonceWatcher(agentClient agent.Agent, nonce string, watch WatchType, options agent.WaitOptions) *NonceWatcher {
	return &NonceWatcher{
		agent:   agentClient,
		nonce:   nonce,
		watch:   watch,
		options: options,
	}
}

// NonceWatcher polls the agent for an inbound request carrying a nonce, which the browser showed as scannable code.
type NonceWatcher struct {
	agent   agent.Agent
	nonce   string
	watch   WatchType
	options agent.WaitOptions
}

// Watch polls until a watched request with the nonce is in an actionable state. A request in any other state
// is a failure. It fails with agent.ErrWaitTimeout when the attempts are exhausted.
func (w *NonceWatcher) Watch(ctx context.Context) (*InboundRequest, error) {
	log.Logger().WithField(core.LogFieldNonce, w.nonce).Debug("Watching for inbound request")
	return agent.Poll(ctx, w.options, w.poll)
}

func (w *NonceWatcher) poll(ctx context.Context) (*InboundRequest, bool, error) {
	query := map[string]string{nonceQueryKey: w.nonce}
	if w.watch&WatchConnection != 0 {
		connections, err := w.agent.GetConnections(ctx, query)
		if err != nil {
			return nil, false, err
		}
		if len(connections) > 0 {
			connection := connections[0]
			if connection.State != agent.ConnectionStateInboundOffer {
				return nil, false, fmt.Errorf("unexpected state of connection (id=%s, state=%s)", connection.ID, connection.State)
			}
			return &InboundRequest{Connection: &connection}, true, nil
		}
	}
	if w.watch&WatchCredential != 0 {
		credentials, err := w.agent.GetCredentials(ctx, query)
		if err != nil {
			return nil, false, err
		}
		if len(credentials) > 0 {
			credential := credentials[0]
			if credential.State != agent.CredentialStateInboundRequest {
				return nil, false, fmt.Errorf("unexpected state of credential (id=%s, state=%s)", credential.ID, credential.State)
			}
			return &InboundRequest{Credential: &credential}, true, nil
		}
	}
	if w.watch&WatchVerification != 0 {
		verifications, err := w.agent.GetVerifications(ctx, query)
		if err != nil {
			return nil, false, err
		}
		if len(verifications) > 0 {
			verification := verifications[0]
			if verification.State != agent.VerificationStateInboundVerificationRequest {
				return nil, false, fmt.Errorf("unexpected state of verification (id=%s, state=%s)", verification.ID, verification.State)
			}
			return &InboundRequest{Verification: &verification}, true, nil
		}
	}
	return nil, false, nil
}
