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

package storage

import "time"

// Config specifies config for the storage engine.
type Config struct {
	// SQL specifies the SQL database holding the user accounts.
	SQL SQLConfig `koanf:"sql"`
	// Session specifies the database holding browser sessions.
	Session SessionConfig `koanf:"session"`
}

// SQLConfig specifies config for the SQL storage engine.
type SQLConfig struct {
	// Connection is the connection string for the SQL database.
	// When empty, a SQLite database in the data directory is used.
	Connection string `koanf:"connection"`
}

// SessionConfig specifies config for the session storage engine.
type SessionConfig struct {
	// TTL is the time browser sessions are kept after they were last written.
	TTL time.Duration `koanf:"ttl"`
	// Redis specifies config for a Redis server. When not configured, sessions are kept in memory.
	Redis RedisConfig `koanf:"redis"`
}

// RedisConfig specifies config for the Redis session store.
type RedisConfig struct {
	// Address is the Redis server address, e.g. localhost:6379
	Address string `koanf:"address"`
	// Username is the Redis ACL username, optional.
	Username string `koanf:"username"`
	// Password is the Redis password, optional.
	Password string `koanf:"password"`
	// Database is the Redis database number.
	Database int `koanf:"database"`
	// Prefix is prepended to all keys, so multiple applications can share a Redis server.
	Prefix string `koanf:"prefix"`
}

func (r RedisConfig) isConfigured() bool {
	return len(r.Address) > 0
}

// DefaultConfig returns the default configuration for the storage engine.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			TTL: time.Hour,
		},
	}
}
