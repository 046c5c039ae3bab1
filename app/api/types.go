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

package api

import (
	"github.com/nuts-foundation/nuts-demo-credentials/flow"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

// FlowResponse is returned when a flow was started. The browser polls the flow's status with the session cookie.
type FlowResponse struct {
	ID string `json:"id"`
}

// SignupRequest starts a signup. The holder's agent is contacted through the nonce of a scanned code,
// the invitation URL or the agent name, in that order.
type SignupRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	AgentName     string `json:"agent_name,omitempty"`
	InvitationURL string `json:"invitation_url,omitempty"`
	Nonce         string `json:"nonce,omitempty"`
}

func (r SignupRequest) params() flow.SignupParams {
	connection := flow.ConnectionParams{
		AgentName:     r.AgentName,
		InvitationURL: r.InvitationURL,
		Nonce:         r.Nonce,
	}
	switch {
	case r.Nonce != "":
		connection.Method = flow.ConnectQR
	case r.InvitationURL != "":
		connection.Method = flow.ConnectInvitation
	default:
		connection.Method = flow.ConnectInBand
	}
	return flow.SignupParams{
		Username:   r.Username,
		Password:   r.Password,
		Connection: connection,
	}
}

// CredentialLoginRequest starts a login with a credential. The username can be omitted when the nonce of a scanned code is given.
type CredentialLoginRequest struct {
	Username string `json:"username,omitempty"`
	Nonce    string `json:"nonce,omitempty"`
}

// IssuanceRequest starts issuing a credential to the logged-in user.
type IssuanceRequest struct {
	Nonce string `json:"nonce,omitempty"`
}

// PasswordLoginRequest logs in with a username and password.
type PasswordLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// InvitationRequest creates an invitation to show as scannable code.
type InvitationRequest struct {
	// Type is the kind of flow the code is for.
	Type flow.Kind `json:"type,omitempty"`
}

// InvitationResponse holds the invitation and the nonce to start a flow with, once the code was scanned.
type InvitationResponse struct {
	Nonce    string `json:"nonce"`
	URL      string `json:"url"`
	ShortURL string `json:"short_url,omitempty"`
}

// CreateUserRequest creates a user without a signup flow.
type CreateUserRequest struct {
	Username     string            `json:"username"`
	Password     string            `json:"password"`
	PersonalInfo user.PersonalInfo `json:"personal_info"`
	Opts         user.Opts         `json:"opts"`
}

// UpdateUserRequest replaces the personal info and opts of the logged-in user.
type UpdateUserRequest struct {
	PersonalInfo user.PersonalInfo `json:"personal_info"`
	Opts         user.Opts         `json:"opts"`
}

// UserSummary is a user as listed to other users: personal info stays with its owner.
type UserSummary struct {
	Username string    `json:"username"`
	Opts     user.Opts `json:"opts"`
}

func summarize(records ...user.Record) []UserSummary {
	result := make([]UserSummary, 0, len(records))
	for _, record := range records {
		result = append(result, UserSummary{Username: record.Username, Opts: record.Opts})
	}
	return result
}
