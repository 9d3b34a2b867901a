package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/gradepilot/gradepilot/gen/ent"
)

// sqliteDriver adapts modernc.org/sqlite to the driver name Ent's sqlite3
// dialect expects, enabling foreign keys per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// OpenSQLite opens an embedded SQLite database (":memory:" or a file path)
// and runs schema migration. Used by the batch CLI and local development.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	dsn := path
	if dsn == "" || dsn == ":memory:" {
		dsn = "file:gradepilot?mode=memory&cache=shared"
	}

	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("sqlite schema migration failed", "error", err)
		_ = client.Close()
		return nil, err
	}
	logger.Info("sqlite database ready", "path", path)
	return client, nil
}
