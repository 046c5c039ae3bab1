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
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/proof/log"
	"github.com/nuts-foundation/nuts-demo-credentials/user"
)

var _ SignupHelper = (*AccountHelper)(nil)

const (
	dmvKeyMarker = "mdl"
	hrKeyMarker  = "hr"
)

const (
	// DOBTimestampAttribute holds the date of birth as UTC epoch seconds, truncated to the day.
	DOBTimestampAttribute = "dob_timestamp"
	// InstitutionNumberAttribute holds the bank's institution number.
	InstitutionNumberAttribute = "institution_number"
	// TransitNumberAttribute holds the branch transit number.
	TransitNumberAttribute = "transit_number"
)

var requiredAccountAttributes = []string{"address_line_1", "city", "state", "zip_code", "country", "ssn", "dob"}

var dobLayouts = []string{"2006-01-02", "01/02/2006", "20060102"}

// AccountConfig configures the issuers an AccountHelper requires credentials from.
type AccountConfig struct {
	// DMV is the agent issuing driver's licenses.
	DMV agent.Target
	// HR is the agent issuing employment credentials.
	HR agent.Target
	// Wait bounds connecting to the issuers.
	Wait agent.WaitOptions
}

// NewAccountHelper creates a signup helper for opening bank accounts. The template's attributes with "mdl" in their key
// are restricted to credentials of the DMV, attributes with "hr" in their key to credentials of HR.
func NewAccountHelper(template *FileHelper, agentClient agent.Agent, config AccountConfig) *AccountHelper {
	return &AccountHelper{
		template: template,
		agent:    agentClient,
		config:   config,
	}
}

// AccountHelper is a SignupHelper requiring a driver's license and an employment credential.
type AccountHelper struct {
	template *FileHelper
	agent    agent.Agent
	config   AccountConfig
}

// GetProofSchema connects to both issuers (when not connected yet) and restricts the template's attributes to their
// credential definitions.
func (a *AccountHelper) GetProofSchema(ctx context.Context, restrictions []agent.Restriction) (*agent.ProofSchema, error) {
	schema, err := a.template.GetProofSchema(ctx, restrictions)
	if err != nil {
		return nil, err
	}
	dmvRestrictions, err := a.issuerRestrictions(ctx, a.config.DMV)
	if err != nil {
		return nil, err
	}
	hrRestrictions, err := a.issuerRestrictions(ctx, a.config.HR)
	if err != nil {
		return nil, err
	}
	for key, attribute := range schema.RequestedAttributes {
		switch {
		case strings.Contains(key, dmvKeyMarker):
			attribute.Restrictions = copyRestrictions(dmvRestrictions)
		case strings.Contains(key, hrKeyMarker):
			attribute.Restrictions = copyRestrictions(hrRestrictions)
		default:
			continue
		}
		schema.RequestedAttributes[key] = attribute
	}
	return schema, nil
}

func (a *AccountHelper) issuerRestrictions(ctx context.Context, issuer agent.Target) ([]agent.Restriction, error) {
	connection, err := a.connect(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to issuer %s: %w", targetString(issuer), err)
	}
	if connection.Remote.PublicDID == "" {
		return nil, fmt.Errorf("issuer %s has no public DID", targetString(issuer))
	}
	definitions, err := a.agent.GetCredentialDefinitions(ctx, map[string]string{"owner_did": connection.Remote.PublicDID})
	if err != nil {
		return nil, fmt.Errorf("unable to list credential definitions of issuer %s: %w", targetString(issuer), err)
	}
	if len(definitions) == 0 {
		return nil, fmt.Errorf("issuer %s has no credential definitions", targetString(issuer))
	}
	result := make([]agent.Restriction, 0, len(definitions))
	for _, definition := range definitions {
		result = append(result, agent.Restriction{CredDefID: definition.ID})
	}
	return result, nil
}

// connect returns an established connection to the issuer, creating one if there is none.
func (a *AccountHelper) connect(ctx context.Context, issuer agent.Target) (*agent.Connection, error) {
	query := map[string]string{"state": string(agent.ConnectionStateConnected)}
	if issuer.Name != "" {
		query["remote.name"] = issuer.Name
	} else {
		query["remote.url"] = issuer.URL
	}
	connections, err := a.agent.GetConnections(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(connections) > 0 {
		return &connections[0], nil
	}
	log.Logger().Infof("Connecting to issuer %s", targetString(issuer))
	offer, err := a.agent.CreateConnection(ctx, issuer, nil)
	if err != nil {
		return nil, err
	}
	connection, err := a.agent.WaitForConnection(ctx, offer.ID, a.config.Wait)
	if err != nil {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if deleteErr := a.agent.DeleteConnection(cleanupCtx, offer.ID); deleteErr != nil {
			log.Logger().
				WithError(deleteErr).
				WithField(core.LogFieldConnectionID, offer.ID).
				Warn("Unable to delete connection offer to issuer")
		}
		return nil, err
	}
	return connection, nil
}

// CheckProof checks the proof against the template, then requires the names on both credentials to match,
// a full address, SSN and date of birth, and a country of residence in the United States.
func (a *AccountHelper) CheckProof(ctx context.Context, verification agent.Verification, personalInfo user.PersonalInfo) error {
	if err := a.template.CheckProof(ctx, verification, personalInfo); err != nil {
		return err
	}
	dmv := keyedAttributes(verification, dmvKeyMarker)
	hr := keyedAttributes(verification, hrKeyMarker)
	for _, name := range []string{"first_name", "last_name"} {
		license, employment := strings.TrimSpace(dmv[name]), strings.TrimSpace(hr[name])
		if license == "" || employment == "" {
			return fmt.Errorf("proof must contain %s from both a driver's license and an employment credential", name)
		}
		if !strings.EqualFold(license, employment) {
			return fmt.Errorf("%s on driver's license (%s) does not match employment credential (%s)", name, license, employment)
		}
	}
	attributes := mergedAttributes(verification)
	for _, name := range requiredAccountAttributes {
		if strings.TrimSpace(attributes[name]) == "" {
			return fmt.Errorf("proof is missing attribute: %s", name)
		}
	}
	if country := strings.TrimSpace(attributes["country"]); !isUnitedStates(country) {
		return fmt.Errorf("accounts can only be opened by residents of the United States (country=%s)", country)
	}
	if _, err := parseDOB(attributes["dob"]); err != nil {
		return err
	}
	return nil
}

// ProofToUserRecord builds the personal info of the new account holder. Values from the driver's license take precedence.
// It adds the date of birth as timestamp for range proofs, and new institution, transit and account numbers.
func (a *AccountHelper) ProofToUserRecord(_ context.Context, verification agent.Verification) (user.PersonalInfo, error) {
	if verification.Info == nil {
		return nil, errNoProof
	}
	result := user.PersonalInfo{}
	for name, value := range mergedAttributes(verification) {
		result[name] = value
	}
	dob, err := parseDOB(result["dob"])
	if err != nil {
		return nil, err
	}
	result[DOBTimestampAttribute] = strconv.FormatInt(dob.Unix(), 10)
	numbers := []struct {
		attribute string
		digits    int
	}{
		{InstitutionNumberAttribute, 3},
		{TransitNumberAttribute, 5},
		{user.AccountNumberAttribute, 7},
	}
	for _, number := range numbers {
		if result[number.attribute], err = randomDigits(number.digits); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// keyedAttributes returns the disclosed attributes whose requested attribute key contains the marker.
func keyedAttributes(verification agent.Verification, marker string) map[string]string {
	result := map[string]string{}
	if verification.Info == nil {
		return result
	}
	for _, attribute := range verification.Info.Attributes {
		if strings.Contains(attribute.Key, marker) {
			result[user.NormalizeAttributeName(attribute.Name)] = attribute.Value
		}
	}
	return result
}

// mergedAttributes returns all disclosed attributes by normalized name, preferring driver's license values.
func mergedAttributes(verification agent.Verification) map[string]string {
	result := keyedAttributes(verification, dmvKeyMarker)
	if verification.Info == nil {
		return result
	}
	for _, attribute := range verification.Info.Attributes {
		name := user.NormalizeAttributeName(attribute.Name)
		if _, exists := result[name]; !exists {
			result[name] = attribute.Value
		}
	}
	return result
}

func isUnitedStates(country string) bool {
	return strings.EqualFold(country, "United States") || strings.EqualFold(country, "US")
}

// parseDOB parses a date of birth and truncates it to the day, in UTC.
func parseDOB(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dobLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed.Truncate(24 * time.Hour), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date of birth: %s", value)
}

func randomDigits(n int) (string, error) {
	var builder strings.Builder
	for i := 0; i < n; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("unable to generate number: %w", err)
		}
		builder.WriteString(digit.String())
	}
	return builder.String(), nil
}

func targetString(target agent.Target) string {
	if target.Name != "" {
		return target.Name
	}
	return target.URL
}
