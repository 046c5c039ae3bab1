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

package app

import "github.com/nuts-foundation/nuts-demo-credentials/flow"

const (
	// HelperFile checks proofs against a proof schema template.
	HelperFile = "file"
	// HelperAccount requires a driver's license and an employment credential to sign up.
	HelperAccount = "account"
	// HelperNonePass accepts every proof.
	HelperNonePass = "none-pass"
	// HelperNoneFail refuses every proof.
	HelperNoneFail = "none-fail"
)

// Config holds the config of the demo application.
type Config struct {
	// Name is the name of the issuing organization, shown on credential cards.
	Name    string              `koanf:"name"`
	Signup  HelperConfig        `koanf:"signup"`
	Login   LoginConfig         `koanf:"login"`
	Account AccountConfig       `koanf:"account"`
	Card    CardConfig          `koanf:"card"`
	Flows   flow.RegistryConfig `koanf:"flows"`
}

// HelperConfig selects the proof helper of a flow.
type HelperConfig struct {
	Helper string `koanf:"helper"`
	// ProofSchema is the path of the proof schema template. When empty, the built-in template is used.
	ProofSchema string `koanf:"proofschema"`
}

// LoginConfig configures logging in with a credential.
type LoginConfig struct {
	Helper      string `koanf:"helper"`
	ProofSchema string `koanf:"proofschema"`
	// RestrictToIssuer only accepts credentials issued by our own agent.
	RestrictToIssuer bool `koanf:"restricttoissuer"`
}

// AccountConfig holds the issuers the account signup helper requires credentials from.
type AccountConfig struct {
	DMV TargetConfig `koanf:"dmv"`
	HR  TargetConfig `koanf:"hr"`
}

// TargetConfig identifies the agent of an issuer.
type TargetConfig struct {
	Name string `koanf:"name"`
	URL  string `koanf:"url"`
}

func (t TargetConfig) isConfigured() bool {
	return t.Name != "" || t.URL != ""
}

// CardConfig holds the mustache SVG templates of credential cards and the connection icon.
// Empty template paths select the built-in templates.
type CardConfig struct {
	Front string `koanf:"front"`
	Back  string `koanf:"back"`
	Icon  string `koanf:"icon"`
}

// DefaultConfig returns the default config of the demo application.
func DefaultConfig() Config {
	return Config{
		Name:   "bank",
		Signup: HelperConfig{Helper: HelperFile},
		Login:  LoginConfig{Helper: HelperFile},
		Flows:  flow.DefaultRegistryConfig(),
	}
}
