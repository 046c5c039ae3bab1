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

import (
	"errors"
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a session entry does not exist or has expired.
var ErrNotFound = errors.New("not found")

// Engine defines the interface for the storage engine.
type Engine interface {
	core.Engine
	core.Configurable
	core.Runnable

	// GetSQLDatabase returns the SQL database holding the application's persistent data.
	GetSQLDatabase() *gorm.DB
	// GetSessionDatabase returns the database for short-lived, browser session bound data.
	GetSessionDatabase() SessionDatabase
	// SessionTTL returns how long browser sessions are kept after they were last written.
	SessionTTL() time.Duration
}

// SessionDatabase is a non-persistent database that holds session data on a KV basis.
// Keys could be browser session IDs, flow IDs, etc.
type SessionDatabase interface {
	// GetStore returns a SessionStore with the given keys as key prefixes.
	// The keys are used to logically partition the store, eg: different applications or purposes.
	// Entries in the returned store expire after the given TTL.
	GetStore(ttl time.Duration, keys ...string) SessionStore
	// Close stops any background processes and closes the database.
	Close()
}

// SessionStore is a key-value store that holds session data.
// The SessionStore is an abstraction for underlying storage, it automatically adds prefixes for logical partitions.
type SessionStore interface {
	// Delete deletes the entry for the given key.
	// It does not return an error if the key does not exist.
	Delete(key string) error
	// Exists returns true if the key exists.
	Exists(key string) bool
	// Get returns the value for the given key.
	// Returns ErrNotFound if the key does not exist.
	Get(key string, target interface{}) error
	// Put stores the given value for the given key, resetting its TTL.
	Put(key string, value interface{}) error
}
