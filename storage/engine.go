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
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/storage/log"
	"gorm.io/gorm"
)

const engineName = "Storage"

// New creates a new instance of the storage engine.
func New() Engine {
	return &engine{
		config: DefaultConfig(),
	}
}

type engine struct {
	config          Config
	sqlDB           *gorm.DB
	sessionDatabase SessionDatabase
}

func (e *engine) Name() string {
	return engineName
}

func (e *engine) Config() interface{} {
	return &e.config
}

func (e *engine) GetSQLDatabase() *gorm.DB {
	return e.sqlDB
}

func (e *engine) GetSessionDatabase() SessionDatabase {
	return e.sessionDatabase
}

func (e *engine) SessionTTL() time.Duration {
	return e.config.Session.TTL
}

// Configure opens the SQL database and session database.
func (e *engine) Configure(config core.ServerConfig) error {
	if e.config.Session.TTL <= 0 {
		return errors.New("storage.session.ttl must be positive")
	}
	connectionString := e.config.SQL.Connection
	if len(connectionString) == 0 {
		connectionString = sqliteConnectionString(config.Datadir)
		log.Logger().Info("No SQL database configured, using SQLite database in data directory")
	}
	var err error
	if e.sqlDB, err = openSQLDatabase(connectionString); err != nil {
		return err
	}

	if e.config.Session.Redis.isConfigured() {
		client, err := createRedisClient(e.config.Session.Redis)
		if err != nil {
			return fmt.Errorf("unable to connect to Redis session database: %w", err)
		}
		log.Logger().Infof("Using Redis session database (address=%s)", e.config.Session.Redis.Address)
		e.sessionDatabase = NewRedisSessionDatabase(client, e.config.Session.Redis.Prefix)
	} else {
		e.sessionDatabase = NewInMemorySessionDatabase()
	}
	return nil
}

func (e *engine) Start() error {
	return nil
}

func (e *engine) Shutdown() error {
	if e.sessionDatabase != nil {
		e.sessionDatabase.Close()
	}
	if e.sqlDB != nil {
		underlying, err := e.sqlDB.DB()
		if err != nil {
			return err
		}
		if err := underlying.Close(); err != nil {
			return fmt.Errorf("unable to close SQL database: %w", err)
		}
	}
	return nil
}
