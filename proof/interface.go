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

package proof

import (
	"context"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

// Helper builds the proof schemas the application requests and checks the proofs it receives.
type Helper interface {
	// GetProofSchema returns a new proof schema, ready to be published to the agent.
	// When restrictions is not nil, it replaces the restrictions of every attribute that requires a credential.
	GetProofSchema(ctx context.Context, restrictions []agent.Restriction) (*agent.ProofSchema, error)
	// CheckProof validates the disclosed attributes of a passed verification.
	// When personalInfo is not nil, every requested attribute must match the user's record.
	CheckProof(ctx context.Context, verification agent.Verification, personalInfo user.PersonalInfo) error
}

// SignupHelper is a Helper that can turn a proof into the personal info of a new user.
type SignupHelper interface {
	Helper
	// ProofToUserRecord extracts the personal info of a new user from a checked proof.
	ProofToUserRecord(ctx context.Context, verification agent.Verification) (user.PersonalInfo, error)
}
