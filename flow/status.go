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

// Kind is the kind of flow.
type Kind string

const (
	// KindSignup is the flow creating an account from a proof, then issuing a credential to it.
	KindSignup Kind = "signup"
	// KindLogin is the flow logging in a user with a proof.
	KindLogin Kind = "login"
	// KindIssuance is the flow issuing a credential to an existing user.
	KindIssuance Kind = "issuance"
)

// Status is the state of a flow. Statuses are ordered; a flow never moves back to a lower status.
type Status string

const (
	StatusCreated                Status = "CREATED"
	StatusWaitingForOffer        Status = "WAITING_FOR_OFFER"
	StatusEstablishingConnection Status = "ESTABLISHING_CONNECTION"
	StatusCheckingCredential     Status = "CHECKING_CREDENTIAL"
	StatusBuildingCredential     Status = "BUILDING_CREDENTIAL"
	StatusIssuingCredential      Status = "ISSUING_CREDENTIAL"
	StatusFinished               Status = "FINISHED"
	StatusError                  Status = "ERROR"
	StatusStopped                Status = "STOPPED"
)

var statusRanks = map[Status]int{
	StatusCreated:                0,
	StatusWaitingForOffer:        1,
	StatusEstablishingConnection: 2,
	StatusCheckingCredential:     3,
	StatusBuildingCredential:     4,
	StatusIssuingCredential:      5,
	StatusFinished:               6,
	StatusError:                  6,
	StatusStopped:                6,
}

// Rank returns the position of the status in the flow's lifecycle. All terminal statuses share the highest rank.
func (s Status) Rank() int {
	return statusRanks[s]
}

// IsTerminal returns true for FINISHED, ERROR and STOPPED.
func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusError || s == StatusStopped
}
