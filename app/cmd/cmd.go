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

package cmd

import (
	"fmt"

	"github.com/nuts-foundation/nuts-demo-credentials/app"
	"github.com/spf13/pflag"
)

// FlagSet defines the set of flags that sets the demo application configuration
func FlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("app", pflag.ContinueOnError)

	defs := app.DefaultConfig()
	flags.String("app.name", defs.Name, "Name of the issuing organization, shown on credential cards.")
	flags.String("app.signup.helper", defs.Signup.Helper, fmt.Sprintf("Proof helper of the signup flow. Options are '%s', '%s', '%s' and '%s'.",
		app.HelperFile, app.HelperAccount, app.HelperNonePass, app.HelperNoneFail))
	flags.String("app.signup.proofschema", defs.Signup.ProofSchema, "Path of the proof schema template requested on signup. When empty, the built-in template is used.")
	flags.String("app.login.helper", defs.Login.Helper, fmt.Sprintf("Proof helper of the login flow. Options are '%s', '%s' and '%s'.",
		app.HelperFile, app.HelperNonePass, app.HelperNoneFail))
	flags.String("app.login.proofschema", defs.Login.ProofSchema, "Path of the proof schema template requested on login. When empty, the built-in template is used.")
	flags.Bool("app.login.restricttoissuer", defs.Login.RestrictToIssuer, "When set, only credentials issued by this application's agent are accepted on login.")
	flags.String("app.account.dmv.name", defs.Account.DMV.Name, "Agent name of the DMV, required by the account signup helper.")
	flags.String("app.account.dmv.url", defs.Account.DMV.URL, "Invitation URL of the DMV's agent, used when the DMV has no agent name.")
	flags.String("app.account.hr.name", defs.Account.HR.Name, "Agent name of HR, required by the account signup helper.")
	flags.String("app.account.hr.url", defs.Account.HR.URL, "Invitation URL of HR's agent, used when HR has no agent name.")
	flags.String("app.card.front", defs.Card.Front, "Path of the mustache SVG template of the credential card front.")
	flags.String("app.card.back", defs.Card.Back, "Path of the mustache SVG template of the credential card back.")
	flags.String("app.card.icon", defs.Card.Icon, "Path of the image shown by wallets on connection offers.")
	flags.Duration("app.flows.ttl", defs.Flows.TTL, "How long finished flows are kept for the browser to pick up the result.")
	flags.Duration("app.flows.maxage", defs.Flows.MaxAge, "How long a flow may run before it's stopped.")
	flags.Duration("app.flows.pruneinterval", defs.Flows.PruneInterval, "Interval at which expired flows are removed.")

	return flags
}
