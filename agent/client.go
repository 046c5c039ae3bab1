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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/agent/log"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
)

var _ Agent = (*HTTPClient)(nil)

const apiPathPrefix = "api/v1"

// NewHTTPClient creates an Agent that calls the REST API of the cloud agent at the given base URL.
// Requests are authenticated with HTTP basic auth, using the agent name and password.
func NewHTTPClient(baseURL string, name string, password string, client core.HTTPRequestDoer) (*HTTPClient, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid agent URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid agent URL: scheme must be http or https (url=%s)", baseURL)
	}
	return &HTTPClient{
		baseURL:  parsedURL,
		name:     name,
		password: password,
		client:   client,
	}, nil
}

// HTTPClient is an Agent backed by the REST API of the cloud agent.
type HTTPClient struct {
	baseURL  *url.URL
	name     string
	password string
	client   core.HTTPRequestDoer
}

type listResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

type connectionRequest struct {
	To            *Target         `json:"to,omitempty"`
	InvitationURL string          `json:"invitation_url,omitempty"`
	State         ConnectionState `json:"state,omitempty"`
	Properties    Properties      `json:"properties,omitempty"`
}

type verificationRequest struct {
	To            *Target           `json:"to,omitempty"`
	ProofSchemaID string            `json:"proof_schema_id,omitempty"`
	State         VerificationState `json:"state"`
	Properties    Properties        `json:"properties,omitempty"`
}

type credentialRequest struct {
	To         Target            `json:"to"`
	CredDefID  string            `json:"cred_def_id"`
	State      CredentialState   `json:"state"`
	Attributes map[string]string `json:"attributes"`
	Properties Properties        `json:"properties,omitempty"`
}

func (c *HTTPClient) GetCredentialDefinitions(ctx context.Context, filter map[string]string) ([]CredentialDefinition, error) {
	var result listResponse[CredentialDefinition]
	if err := c.do(ctx, http.MethodGet, "credential_definitions", filter, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *HTTPClient) GetCredentialSchema(ctx context.Context, id string) (*Schema, error) {
	var result Schema
	if err := c.do(ctx, http.MethodGet, "credential_schemas/"+url.PathEscape(id), nil, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateConnection(ctx context.Context, to Target, properties Properties) (*Connection, error) {
	return c.postConnection(ctx, connectionRequest{To: &to, Properties: properties})
}

func (c *HTTPClient) AcceptInvitation(ctx context.Context, invitationURL string, properties Properties) (*Connection, error) {
	return c.postConnection(ctx, connectionRequest{InvitationURL: invitationURL, Properties: properties})
}

func (c *HTTPClient) postConnection(ctx context.Context, request connectionRequest) (*Connection, error) {
	var result Connection
	if err := c.do(ctx, http.MethodPost, "connections", nil, request, &result, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) AcceptConnection(ctx context.Context, id string, properties Properties) (*Connection, error) {
	var result Connection
	request := connectionRequest{State: ConnectionStateConnected, Properties: properties}
	if err := c.do(ctx, http.MethodPatch, "connections/"+url.PathEscape(id), nil, request, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetConnection(ctx context.Context, id string) (*Connection, error) {
	var result Connection
	if err := c.do(ctx, http.MethodGet, "connections/"+url.PathEscape(id), nil, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetConnections(ctx context.Context, query map[string]string) ([]Connection, error) {
	var result listResponse[Connection]
	if err := c.do(ctx, http.MethodGet, "connections", query, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *HTTPClient) DeleteConnection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "connections/"+url.PathEscape(id), nil, nil, nil, http.StatusOK, http.StatusNoContent)
}

func (c *HTTPClient) WaitForConnection(ctx context.Context, id string, options WaitOptions) (*Connection, error) {
	return Poll(ctx, options, func(ctx context.Context) (*Connection, bool, error) {
		connection, err := c.GetConnection(ctx, id)
		if err != nil {
			return nil, false, err
		}
		switch connection.State {
		case ConnectionStateConnected:
			return connection, true, nil
		case ConnectionStateRejected:
			return nil, false, fmt.Errorf("%w (id=%s)", ErrConnectionRejected, id)
		default:
			return connection, false, nil
		}
	})
}

func (c *HTTPClient) CreateVerification(ctx context.Context, to Target, proofSchemaID string, state VerificationState, properties Properties) (*Verification, error) {
	var result Verification
	request := verificationRequest{To: &to, ProofSchemaID: proofSchemaID, State: state, Properties: properties}
	if err := c.do(ctx, http.MethodPost, "verifications", nil, request, &result, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateVerification(ctx context.Context, id string, state VerificationState, proofSchemaID string) (*Verification, error) {
	var result Verification
	request := verificationRequest{ProofSchemaID: proofSchemaID, State: state}
	if err := c.do(ctx, http.MethodPatch, "verifications/"+url.PathEscape(id), nil, request, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetVerification(ctx context.Context, id string) (*Verification, error) {
	var result Verification
	if err := c.do(ctx, http.MethodGet, "verifications/"+url.PathEscape(id), nil, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetVerifications(ctx context.Context, query map[string]string) ([]Verification, error) {
	var result listResponse[Verification]
	if err := c.do(ctx, http.MethodGet, "verifications", query, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *HTTPClient) DeleteVerification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "verifications/"+url.PathEscape(id), nil, nil, nil, http.StatusOK, http.StatusNoContent)
}

func (c *HTTPClient) WaitForVerification(ctx context.Context, id string, options WaitOptions) (*Verification, error) {
	return Poll(ctx, options, func(ctx context.Context) (*Verification, bool, error) {
		verification, err := c.GetVerification(ctx, id)
		if err != nil {
			return nil, false, err
		}
		switch verification.State {
		case VerificationStatePassed, VerificationStateFailed, VerificationStateRejected:
			return verification, true, nil
		default:
			return verification, false, nil
		}
	})
}

func (c *HTTPClient) OfferCredential(ctx context.Context, to Target, credDefID string, attributes map[string]string, properties Properties) (*Credential, error) {
	var result Credential
	request := credentialRequest{
		To:         to,
		CredDefID:  credDefID,
		State:      CredentialStateOutboundOffer,
		Attributes: attributes,
		Properties: properties,
	}
	if err := c.do(ctx, http.MethodPost, "credentials", nil, request, &result, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetCredential(ctx context.Context, id string) (*Credential, error) {
	var result Credential
	if err := c.do(ctx, http.MethodGet, "credentials/"+url.PathEscape(id), nil, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetCredentials(ctx context.Context, query map[string]string) ([]Credential, error) {
	var result listResponse[Credential]
	if err := c.do(ctx, http.MethodGet, "credentials", query, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *HTTPClient) DeleteCredential(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "credentials/"+url.PathEscape(id), nil, nil, nil, http.StatusOK, http.StatusNoContent)
}

func (c *HTTPClient) WaitForCredential(ctx context.Context, id string, options WaitOptions) (*Credential, error) {
	return Poll(ctx, options, func(ctx context.Context) (*Credential, bool, error) {
		credential, err := c.GetCredential(ctx, id)
		if err != nil {
			return nil, false, err
		}
		switch credential.State {
		case CredentialStateIssued, CredentialStateRejected, CredentialStateFailed:
			return credential, true, nil
		default:
			return credential, false, nil
		}
	})
}

func (c *HTTPClient) CreateProofSchema(ctx context.Context, schema ProofSchema) (*ProofSchema, error) {
	var result ProofSchema
	if err := c.do(ctx, http.MethodPost, "proof_schemas", nil, schema, &result, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateInvitation(ctx context.Context, request InvitationRequest) (*Invitation, error) {
	var result Invitation
	if err := c.do(ctx, http.MethodPost, "invitations", nil, request, &result, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

// do executes a request against the agent API. The path is relative to the API root and must be escaped.
// When result is not nil, the response body is unmarshalled into it.
func (c *HTTPClient) do(ctx context.Context, method string, path string, query map[string]string, body interface{}, result interface{}, expectedStatusCodes ...int) error {
	requestURL := strings.TrimSuffix(c.baseURL.String(), "/") + "/" + apiPathPrefix + "/" + path
	if len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			values.Set(key, value)
		}
		requestURL += "?" + values.Encode()
	}

	var requestBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = bytes.NewReader(data)
	}
	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return err
	}
	request.SetBasicAuth(c.name, c.password)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", core.UserAgent())
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("agent request failed (%s %s): %w", method, path, err)
	}
	defer response.Body.Close()
	if response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w (%s %s)", ErrNotFound, method, path)
	}
	if err = core.TestResponseCodeWithLog(response, log.Logger(), expectedStatusCodes...); err != nil {
		return fmt.Errorf("agent request failed (%s %s): %w", method, path, err)
	}
	if result == nil {
		return nil
	}
	if err = json.NewDecoder(response.Body).Decode(result); err != nil {
		return fmt.Errorf("invalid agent response (%s %s): %w", method, path, err)
	}
	return nil
}
