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
	"github.com/nuts-foundation/nuts-demo-credentials/events"
	"github.com/spf13/pflag"
)

// ConfEventsAddress defines the address of the NATS server flow events are published to
const ConfEventsAddress = "events.nats.address"

// ConfEventsSubject defines the subject prefix of published flow events
const ConfEventsSubject = "events.nats.subject"

// ConfEventsTimeout defines the timeout for connecting to NATS
const ConfEventsTimeout = "events.nats.timeout"

// ConfEventsHostname defines the hostname for the embedded NATS server
const ConfEventsHostname = "events.nats.hostname"

// ConfEventsPort defines the port for the embedded NATS server
const ConfEventsPort = "events.nats.port"

// FlagSet defines the set of flags that sets the events-engine configuration
func FlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("events", pflag.ContinueOnError)

	defs := events.DefaultConfig()
	flags.String(ConfEventsAddress, defs.Nats.Address, "Address of the NATS server flow status transitions are published to, e.g. nats://localhost:4222. "+
		"When empty, events are only published when the embedded server is enabled.")
	flags.String(ConfEventsSubject, defs.Nats.Subject, "Subject prefix of flow events, they're published on <subject>.<signup|login|issuance>.")
	flags.Duration(ConfEventsTimeout, defs.Nats.Timeout, "Timeout for connecting to the NATS server.")
	flags.String(ConfEventsHostname, defs.Nats.Hostname, "Hostname the embedded NATS server listens on.")
	flags.Int(ConfEventsPort, defs.Nats.Port, "Port the embedded NATS server listens on. 0 disables the embedded server.")
	return flags
}
