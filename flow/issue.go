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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/card"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
	"golang.org/x/mod/semver"
)

// LatestCredentialDefinition returns the credential definition of the schema with the highest semantic version.
// When versions are equal, the last one wins. Versions that aren't semantic versions sort before all others.
func LatestCredentialDefinition(definitions []agent.CredentialDefinition) (agent.CredentialDefinition, bool) {
	if len(definitions) == 0 {
		return agent.CredentialDefinition{}, false
	}
	sorted := append([]agent.CredentialDefinition{}, definitions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return semver.Compare(canonicalVersion(sorted[i]), canonicalVersion(sorted[j])) < 0
	})
	return sorted[len(sorted)-1], true
}

// canonicalVersion returns the schema version of the definition in the form semver expects ("v1.10").
// When the definition doesn't carry the version, it's taken from the schema ID (issuer:2:name:version).
func canonicalVersion(definition agent.CredentialDefinition) string {
	version := definition.SchemaVersion
	if version == "" {
		parts := strings.Split(definition.SchemaID, ":")
		version = parts[len(parts)-1]
	}
	return "v" + strings.TrimPrefix(version, "v")
}

// latestDefinition returns our agent's newest credential definition.
func (s steps) latestDefinition(ctx context.Context) (*agent.CredentialDefinition, error) {
	definitions, err := s.Agent.GetCredentialDefinitions(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to list credential definitions: %w", err)
	}
	latest, ok := LatestCredentialDefinition(definitions)
	if !ok {
		return nil, errorf(CodeNoCredentialDefinitions, "agent has no credential definitions")
	}
	return &latest, nil
}

// latestSchema returns our agent's newest credential definition and its schema.
func (s steps) latestSchema(ctx context.Context) (*agent.CredentialDefinition, *agent.Schema, error) {
	definition, err := s.latestDefinition(ctx)
	if err != nil {
		return nil, nil, err
	}
	schema, err := s.Agent.GetCredentialSchema(ctx, definition.SchemaID)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read credential schema (id=%s): %w", definition.SchemaID, err)
	}
	return definition, schema, nil
}

// checkAttributes verifies the personal info holds every attribute of the schema. Card images are rendered later.
func checkAttributes(schema *agent.Schema, personalInfo user.PersonalInfo) error {
	var missing []string
	for _, name := range schema.Attributes {
		if card.IsCardAttribute(name) {
			continue
		}
		if _, ok := personalInfo.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errorf(CodeMissingAttributes, "user record is missing attributes: %s", strings.Join(missing, ", "))
	}
	return nil
}

// buildAttributes fills the attributes of the schema from the personal info, rendering card images.
func (s steps) buildAttributes(schema *agent.Schema, personalInfo user.PersonalInfo) (map[string]string, error) {
	if err := checkAttributes(schema, personalInfo); err != nil {
		return nil, err
	}
	result := make(map[string]string, len(schema.Attributes))
	for _, name := range schema.Attributes {
		var err error
		switch name {
		case card.FrontAttribute:
			result[name], err = s.Renderer.CreateCardFront(personalInfo)
		case card.BackAttribute:
			result[name], err = s.Renderer.CreateCardBack(personalInfo)
		default:
			result[name], _ = personalInfo.Get(name)
		}
		if err != nil {
			return nil, fmt.Errorf("unable to render %s: %w", name, err)
		}
	}
	return result, nil
}

// offerCredential offers the credential and waits for the holder to accept it. An offer that doesn't end up
// issued is deleted.
func (s steps) offerCredential(ctx context.Context, target agent.Target, credDefID string, attributes map[string]string) error {
	s.flow.setStatus(StatusIssuingCredential)
	offer, err := s.Agent.OfferCredential(ctx, target, credDefID, attributes, s.properties())
	if err != nil {
		return fmt.Errorf("unable to offer credential: %w", err)
	}
	s.flow.setCredential(offer)
	logger := s.flow.logger().WithField(core.LogFieldCredentialID, offer.ID)
	logger.Debug("Credential offered")

	credential, err := s.Agent.WaitForCredential(ctx, offer.ID, s.Wait)
	if err == nil && credential.State != agent.CredentialStateIssued {
		err = fmt.Errorf("credential offer ended in state %s", credential.State)
	}
	if err != nil {
		s.cleanup(ctx, "credential", offer.ID, s.Agent.DeleteCredential)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return errorf(CodeCredentialRejected, "credential was not issued: %w", err)
	}
	s.flow.setCredential(credential)
	logger.Info("Credential issued")
	return nil
}
