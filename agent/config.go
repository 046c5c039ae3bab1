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

package agent

import "time"

// Config holds the config of the agent engine.
type Config struct {
	// URL is the base URL of the cloud agent REST API.
	URL string `koanf:"url"`
	// Name is the name of our agent, used to authenticate.
	Name string `koanf:"name"`
	// Password is the password of our agent.
	Password string `koanf:"password"`
	// Timeout is the timeout of a single request to the agent.
	Timeout time.Duration `koanf:"timeout"`
	// Wait bounds how long flows wait for a connection, credential or verification to complete.
	Wait WaitOptions `koanf:"wait"`
}

// DefaultConfig returns the default config of the agent engine.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Wait:    DefaultWaitOptions,
	}
}
