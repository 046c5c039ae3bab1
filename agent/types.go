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

import "time"

// ConnectionState is the state of a connection between two agents.
type ConnectionState string

const (
	// ConnectionStateOutboundOffer means we sent a connection offer that wasn't accepted yet.
	ConnectionStateOutboundOffer ConnectionState = "outbound_offer"
	// ConnectionStateInboundOffer means a remote agent offered a connection to us.
	ConnectionStateInboundOffer ConnectionState = "inbound_offer"
	// ConnectionStateConnected means the connection is established.
	ConnectionStateConnected ConnectionState = "connected"
	// ConnectionStateRejected means the connection offer was rejected.
	ConnectionStateRejected ConnectionState = "rejected"
)

// CredentialState is the state of a credential offer.
type CredentialState string

const (
	// CredentialStateOutboundOffer means we offered the credential, the holder didn't respond yet.
	CredentialStateOutboundOffer CredentialState = "outbound_offer"
	// CredentialStateInboundRequest means a remote agent requested a credential from us.
	CredentialStateInboundRequest CredentialState = "inbound_request"
	// CredentialStateAccepted means the holder accepted the offer and issuance is in progress.
	CredentialStateAccepted CredentialState = "accepted"
	// CredentialStateIssued means the credential is issued to the holder.
	CredentialStateIssued CredentialState = "issued"
	// CredentialStateRejected means the holder rejected the offer.
	CredentialStateRejected CredentialState = "rejected"
	// CredentialStateFailed means issuance failed.
	CredentialStateFailed CredentialState = "failed"
)

// VerificationState is the state of a verification (proof request).
type VerificationState string

const (
	// VerificationStateOutboundProofRequest means we requested a proof from a remote agent.
	VerificationStateOutboundProofRequest VerificationState = "outbound_proof_request"
	// VerificationStateInboundVerificationRequest means a remote agent asks us to verify a proof.
	VerificationStateInboundVerificationRequest VerificationState = "inbound_verification_request"
	// VerificationStateProofGenerated means the holder generated the proof, verification is in progress.
	VerificationStateProofGenerated VerificationState = "proof_generated"
	// VerificationStatePassed means the proof was cryptographically verified.
	VerificationStatePassed VerificationState = "passed"
	// VerificationStateFailed means the proof did not verify.
	VerificationStateFailed VerificationState = "failed"
	// VerificationStateRejected means the holder refused to provide the proof.
	VerificationStateRejected VerificationState = "rejected"
)

// Properties are free-form properties attached to agent records, e.g. a nonce or a display icon.
type Properties map[string]string

// PropertyNonce is the property holding the nonce of a scanned code.
const PropertyNonce = "nonce"

// PropertyIcon is the property holding the icon shown by the counterparty's wallet.
const PropertyIcon = "icon"

// PropertyType is the property describing what a record is used for (e.g. login, signup).
const PropertyType = "type"

// Target identifies the counterparty of a connection, credential or verification.
// For connection offers Name or URL is used, records over an established connection use the pairwise DID.
type Target struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	DID  string `json:"did,omitempty"`
}

// Remote describes the remote agent of a record.
type Remote struct {
	Name        string `json:"name,omitempty"`
	URL         string `json:"url,omitempty"`
	PairwiseDID string `json:"pairwise_did,omitempty"`
	PublicDID   string `json:"public_did,omitempty"`
}

// Target returns a Target addressing this remote over its pairwise connection.
func (r Remote) Target() Target {
	return Target{DID: r.PairwiseDID}
}

// Connection is a pairwise channel between our agent and a remote agent.
type Connection struct {
	ID         string          `json:"id"`
	State      ConnectionState `json:"state"`
	Remote     Remote          `json:"remote"`
	Properties Properties      `json:"properties,omitempty"`
	CreatedAt  *time.Time      `json:"created_at,omitempty"`
}

// Credential is a credential offered to or requested by a remote agent.
type Credential struct {
	ID         string            `json:"id"`
	State      CredentialState   `json:"state"`
	CredDefID  string            `json:"cred_def_id"`
	To         *Remote           `json:"to,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Properties Properties        `json:"properties,omitempty"`
}

// Verification is a proof request, sent to or received from a remote agent.
type Verification struct {
	ID            string            `json:"id"`
	State         VerificationState `json:"state"`
	ProofSchemaID string            `json:"proof_schema_id,omitempty"`
	To            *Remote           `json:"to,omitempty"`
	Info          *VerificationInfo `json:"info,omitempty"`
	Properties    Properties        `json:"properties,omitempty"`
}

// VerificationInfo holds the proof a remote agent supplied.
type VerificationInfo struct {
	Attributes []ProofAttribute `json:"attributes"`
	Predicates []ProofPredicate `json:"predicates,omitempty"`
}

// ProofAttribute is a disclosed attribute of a proof. Key is the key of the requested attribute in the proof schema.
// CredDefID is empty for self-attested attributes.
type ProofAttribute struct {
	Key       string `json:"key,omitempty"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	CredDefID string `json:"cred_def_id,omitempty"`
	SchemaID  string `json:"schema_id,omitempty"`
}

// ProofPredicate is a predicate of a proof (e.g. age over 18).
type ProofPredicate struct {
	Name      string `json:"name"`
	PType     string `json:"p_type"`
	PValue    int64  `json:"p_value"`
	CredDefID string `json:"cred_def_id,omitempty"`
}

// CredentialDefinition binds a schema to the signing material of an issuer.
type CredentialDefinition struct {
	ID            string `json:"id"`
	SchemaID      string `json:"schema_id"`
	SchemaName    string `json:"schema_name,omitempty"`
	SchemaVersion string `json:"schema_version,omitempty"`
	OwnerDID      string `json:"owner_did,omitempty"`
}

// Schema is a published credential schema.
type Schema struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Attributes []string `json:"attr_names"`
}

// ProofSchema describes the attributes and predicates requested in a verification.
type ProofSchema struct {
	ID                  string                        `json:"id,omitempty"`
	Name                string                        `json:"name"`
	Version             string                        `json:"version"`
	RequestedAttributes map[string]RequestedAttribute `json:"requested_attributes"`
	RequestedPredicates map[string]RequestedPredicate `json:"requested_predicates,omitempty"`
}

// RequestedAttribute is an attribute requested in a proof schema.
// A non-nil Restrictions list means the attribute must be backed by a credential.
type RequestedAttribute struct {
	Name         string        `json:"name"`
	Restrictions []Restriction `json:"restrictions,omitempty"`
}

// RequestedPredicate is a predicate requested in a proof schema.
type RequestedPredicate struct {
	Name         string        `json:"name"`
	PType        string        `json:"p_type"`
	PValue       int64         `json:"p_value"`
	Restrictions []Restriction `json:"restrictions,omitempty"`
}

// Restriction limits which credentials may back a requested attribute or predicate.
type Restriction struct {
	CredDefID string `json:"cred_def_id,omitempty"`
	SchemaID  string `json:"schema_id,omitempty"`
	IssuerDID string `json:"issuer_did,omitempty"`
}

// InvitationRequest holds the parameters of a new invitation.
type InvitationRequest struct {
	DirectRoute    bool       `json:"direct_route"`
	ManualAccept   bool       `json:"manual_accept"`
	MaxAcceptances int        `json:"max_acceptances"`
	Properties     Properties `json:"properties,omitempty"`
}

// Invitation is an invitation other agents can accept to connect to our agent.
type Invitation struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	ShortURL string `json:"short_url,omitempty"`
}

// WaitOptions bounds how long a wait operation polls the agent.
type WaitOptions struct {
	// Attempts is the maximum number of times the record is fetched.
	Attempts uint `koanf:"attempts"`
	// Interval is the time between two attempts.
	Interval time.Duration `koanf:"interval"`
}
