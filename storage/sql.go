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
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nuts-foundation/nuts-demo-credentials/storage/log"
	"github.com/nuts-foundation/sqlite"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

//go:embed migrations/*.sql
var sqlMigrationsFS embed.FS

const sqliteConnectionPrefix = "sqlite:"
const defaultSQLiteFile = "demo.db"

// sqliteConnectionString returns the connection string of the SQLite database used when no connection is configured.
func sqliteConnectionString(datadir string) string {
	return sqliteConnectionPrefix + "file:" + path.Join(datadir, defaultSQLiteFile) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// openSQLDatabase connects to the database denoted by the connection string and migrates it to the latest schema.
// Connection strings starting with "sqlite:" are opened as SQLite database, "postgres://" as Postgres.
func openSQLDatabase(connectionString string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	var dialect goose.Dialect
	switch {
	case strings.HasPrefix(connectionString, sqliteConnectionPrefix):
		dialector = gormSqlite.Dialector{
			DriverName: sqlite.DriverName,
			DSN:        strings.TrimPrefix(connectionString, sqliteConnectionPrefix),
		}
		dialect = goose.DialectSQLite3
	case strings.HasPrefix(connectionString, "postgres://"), strings.HasPrefix(connectionString, "postgresql://"):
		dialector = postgres.Open(connectionString)
		dialect = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("unsupported SQL database (connection string should start with sqlite: or postgres://)")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormLogrusLogger{
			underlying:    log.Logger(),
			slowThreshold: slowQueryThreshold,
		},
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQL database: %w", err)
	}
	if err = migrateSQLDatabase(db, dialect); err != nil {
		return nil, err
	}
	return db, nil
}

func migrateSQLDatabase(db *gorm.DB, dialect goose.Dialect) error {
	underlying, err := db.DB()
	if err != nil {
		return err
	}
	migrations, err := fs.Sub(sqlMigrationsFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(dialect, underlying, migrations)
	if err != nil {
		return fmt.Errorf("failed to load SQL migrations: %w", err)
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return fmt.Errorf("failed to migrate SQL database: %w", err)
	}
	for _, result := range results {
		log.Logger().Infof("Applied SQL migration %s (took %s)", result.Source.Path, result.Duration)
	}
	return nil
}
