package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// SiteDocumentsSchema provisions the table the Postgres document store expects.
const SiteDocumentsSchema = `CREATE TABLE IF NOT EXISTS site_documents (
	key        TEXT PRIMARY KEY,
	document   JSONB NOT NULL,
	updated_at BIGINT NOT NULL
);`

const undefinedTable = "42P01"

type PostgresDocumentRepositoryImpl struct {
	db *sqlx.DB
}

func CreatePostgresDocumentRepository(db *sqlx.DB) DocumentRepository {
	return &PostgresDocumentRepositoryImpl{db: db}
}

func (r *PostgresDocumentRepositoryImpl) GetDocument(ctx context.Context, key string) (doc []byte, err error) {
	err = r.db.GetContext(ctx, &doc, "SELECT document FROM site_documents WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrDocumentNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetDocument").Msg("")
		return nil, classifyPostgresError(err)
	}

	return doc, nil
}

// UpsertDocument overwrites the whole document. Concurrent writers resolve to the last one.
func (r *PostgresDocumentRepositoryImpl) UpsertDocument(ctx context.Context, key string, doc []byte) (err error) {
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO site_documents (key, document, updated_at) VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		key, string(doc), time.Now().UnixMilli(),
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertDocument").Msg("")
		return classifyPostgresError(err)
	}

	return nil
}

func (r *PostgresDocumentRepositoryImpl) Close(ctx context.Context) (err error) {
	return nil
}

func classifyPostgresError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("%w: %s", errs.ErrRemoteSchemaMissing, pqErr.Message)
	}

	return fmt.Errorf("%w: %v", errs.ErrRemoteStore, err)
}
