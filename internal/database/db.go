// Package database opens the backing stores: the MySQL pool holding
// the operational tables and the optional Mongo archive.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/avolair/flight-roster/internal/config"
)

const (
	connMaxLifetime = 30 * time.Minute
	pingTimeout     = 5 * time.Second
	defaultMaxConns = 25
)

// Open connects to MySQL using the loaded configuration and verifies
// the connection with a bounded ping. The pool ceiling comes from
// DB_MAX_CONNS; idle connections are kept at the same ceiling since
// every request path touches the database.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", mysqlDSN(cfg))
	if err != nil {
		return nil, err
	}

	maxConns := cfg.DBMaxConns
	if maxConns <= 0 {
		maxConns = defaultMaxConns
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// mysqlDSN builds the driver DSN. parseTime maps DATETIME columns to
// time.Time and loc=UTC keeps every timestamp in UTC end to end, which
// the roster snapshots rely on. A password-less user omits the colon.
func mysqlDSN(cfg config.Config) string {
	cred := cfg.DBUser
	if cfg.DBPass != "" {
		cred = cfg.DBUser + ":" + cfg.DBPass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cred, cfg.DBHost, cfg.DBPort, cfg.DBName)
}
