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

package events

import "time"

// Config holds all the configuration params
type Config struct {
	Nats NATSConfig `koanf:"nats"`
}

// NATSConfig configures publishing flow events to NATS.
type NATSConfig struct {
	// Address of the NATS server to publish to. When empty and Port is set, the embedded server is used.
	Address string `koanf:"address"`
	// Subject is the subject prefix, events are published on <subject>.<flow kind>.
	Subject string `koanf:"subject"`
	// Timeout for connecting to the NATS server.
	Timeout time.Duration `koanf:"timeout"`
	// Hostname the embedded NATS server listens on.
	Hostname string `koanf:"hostname"`
	// Port the embedded NATS server listens on. Zero disables the embedded server.
	Port int `koanf:"port"`
}

// DefaultConfig returns an instance of Config with the default values.
func DefaultConfig() Config {
	return Config{
		Nats: NATSConfig{
			Subject:  "demo.flows",
			Timeout:  5 * time.Second,
			Hostname: "localhost",
		},
	}
}
