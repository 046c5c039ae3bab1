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
	"github.com/nuts-foundation/nuts-demo-credentials/agent"
	"github.com/spf13/pflag"
)

// FlagSet defines the set of flags that sets the agent-engine configuration
func FlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("agent", pflag.ContinueOnError)

	defs := agent.DefaultConfig()
	flags.String("agent.url", defs.URL, "Base URL of the cloud agent REST API.")
	flags.String("agent.name", defs.Name, "Name of the application's agent.")
	flags.String("agent.password", defs.Password, "Password of the application's agent.")
	flags.Duration("agent.timeout", defs.Timeout, "Timeout of a single request to the cloud agent.")
	flags.Uint("agent.wait.attempts", defs.Wait.Attempts, "Number of times a connection, credential or verification is fetched before a flow gives up waiting.")
	flags.Duration("agent.wait.interval", defs.Wait.Interval, "Time between two fetches of a connection, credential or verification.")

	return flags
}
