/*
 * Copyright (C) 2021 Nuts community
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

package events

import (
	"time"

	"github.com/nats-io/nats.go"
)

// Conn defines the methods required in the NATS connection structure
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// Connect connects to the NATS server at the given address. Connection failures are retried in the background,
// so the application doesn't depend on NATS being available at startup.
func Connect(address string, timeout time.Duration) (Conn, error) {
	return nats.Connect(
		address,
		nats.Name("nuts-demo-credentials"),
		nats.RetryOnFailedConnect(true),
		nats.Timeout(timeout),
	)
}
