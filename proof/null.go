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
	"errors"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

var _ SignupHelper = (*NullHelper)(nil)

var errNoProof = errors.New("verification holds no proof")

// ErrProofRefused is returned by a NullHelper that fails all proofs.
var ErrProofRefused = errors.New("proofs are refused by configuration")

const nullAttribute = "dummy"

// NewNullHelper creates a helper that requests a single self-attested attribute and passes (or fails) every proof.
func NewNullHelper(pass bool) *NullHelper {
	return &NullHelper{pass: pass}
}

// NullHelper disables proof checking.
type NullHelper struct {
	pass bool
}

func (n NullHelper) GetProofSchema(_ context.Context, _ []agent.Restriction) (*agent.ProofSchema, error) {
	return &agent.ProofSchema{
		Name:    "Dummy proof request",
		Version: "1.0",
		RequestedAttributes: map[string]agent.RequestedAttribute{
			nullAttribute: {Name: nullAttribute},
		},
	}, nil
}

func (n NullHelper) CheckProof(_ context.Context, _ agent.Verification, _ user.PersonalInfo) error {
	if !n.pass {
		return ErrProofRefused
	}
	return nil
}

// ProofToUserRecord returns the disclosed attributes, without the dummy attribute.
func (n NullHelper) ProofToUserRecord(_ context.Context, verification agent.Verification) (user.PersonalInfo, error) {
	if !n.pass {
		return nil, ErrProofRefused
	}
	result := user.PersonalInfo{}
	if verification.Info == nil {
		return result, nil
	}
	for _, attribute := range verification.Info.Attributes {
		name := user.NormalizeAttributeName(attribute.Name)
		if name != nullAttribute {
			result[name] = attribute.Value
		}
	}
	return result, nil
}
