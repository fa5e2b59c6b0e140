package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var lock = &sync.Mutex{}
var db *sqlx.DB
var currentDSN string

// GetDBInstance returns the shared pool for dsn, reopening it when the credentials change.
func GetDBInstance(ctx context.Context, dsn string) (*sqlx.DB, error) {
	lock.Lock()
	defer lock.Unlock()

	if db != nil && currentDSN == dsn {
		log.Info().Str("component", "GetDBInstance").Msg("instance is already created")
		return db, nil
	}

	if db != nil {
		db.Close()
		db = nil
	}

	sqlDB, err := otelsql.Open("postgres", dsn, otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, err
	}

	conn := sqlx.NewDb(sqlDB, "postgres")
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	db = conn
	currentDSN = dsn

	return db, nil
}

// BuildDSN merges the secret into either a URL or a key/value connection string.
func BuildDSN(connection string, password string) (string, error) {
	if password == "" {
		return connection, nil
	}

	if strings.HasPrefix(connection, "postgres://") || strings.HasPrefix(connection, "postgresql://") {
		u, err := url.Parse(connection)
		if err != nil {
			return "", fmt.Errorf("parse connection url: %w", err)
		}
		username := ""
		if u.User != nil {
			username = u.User.Username()
		}
		u.User = url.UserPassword(username, password)

		return u.String(), nil
	}

	return fmt.Sprintf("%s password='%s'", connection, strings.ReplaceAll(password, "'", `\'`)), nil
}
