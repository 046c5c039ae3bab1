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
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/stretchr/testify/require"
)

// NewTestStorageEngine creates a storage engine backed by a SQLite database in a temporary directory.
// The engine is shut down when the test completes.
func NewTestStorageEngine(t testing.TB) Engine {
	result := New().(*engine)
	require.NoError(t, result.Configure(core.TestServerConfig(core.ServerConfig{Datadir: t.TempDir()})))
	t.Cleanup(func() {
		_ = result.Shutdown()
	})
	return result
}

// NewTestStorageEngineRedis creates a storage engine that stores sessions in an in-process Redis server.
func NewTestStorageEngineRedis(t testing.TB) (Engine, *miniredis.Miniredis) {
	redis := miniredis.RunT(t)
	result := New().(*engine)
	result.config.Session.Redis = RedisConfig{
		Address: redis.Addr(),
		Prefix:  "demo",
	}
	require.NoError(t, result.Configure(core.TestServerConfig(core.ServerConfig{Datadir: t.TempDir()})))
	t.Cleanup(func() {
		_ = result.Shutdown()
	})
	return result, redis
}

// NewTestInMemorySessionDatabase creates an in memory session database that is closed when the test completes.
func NewTestInMemorySessionDatabase(t testing.TB) SessionDatabase {
	db := NewInMemorySessionDatabase()
	t.Cleanup(db.Close)
	return db
}
