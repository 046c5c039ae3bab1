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
	"context"

	"github.com/nuts-foundation/nuts-demo-credentials/flow"
)

// Flows gives access to running flows by ID.
type Flows interface {
	// GetStatus returns the status snapshot of the flow, or flow.ErrFlowNotFound.
	GetStatus(id string) (flow.Snapshot, error)
	// GetUser returns the user the flow is for.
	GetUser(id string) (string, error)
	// Delete stops the flow if it's still running, and removes it.
	Delete(id string) error
}

// SignupFlows starts signups.
type SignupFlows interface {
	Flows
	Create(ctx context.Context, params flow.SignupParams) (string, error)
}

// UserFlows starts flows for a (known or scanned) user: logins and issuances.
type UserFlows interface {
	Flows
	Create(username string, nonce string) (string, error)
}
