package repository

import (
	"context"
	"fmt"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/velvet-storefront/internal/infrastructure/database/postgres"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
)

type DocumentRepositoryFactory func(ctx context.Context, creds domain.StoreCredentials) (DocumentRepository, error)

// OpenDocumentRepository connects to the store named by creds. Postgres is the default provider.
func OpenDocumentRepository(ctx context.Context, creds domain.StoreCredentials) (DocumentRepository, error) {
	if !creds.Configured() {
		return nil, errs.ErrRemoteStoreNotConfigured
	}

	switch creds.Provider {
	case domain.StoreProviderMongoDB:
		db, err := mongodb.ConnectToMongoDB(ctx, creds.URL, creds.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrRemoteStore, err)
		}
		return CreateMongoDBDocumentRepository(db), nil
	case domain.StoreProviderPostgres, "":
		dsn, err := postgres.BuildDSN(creds.URL, creds.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrRemoteStore, err)
		}
		db, err := postgres.GetDBInstance(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrRemoteStore, err)
		}
		return CreatePostgresDocumentRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", errs.ErrClient, creds.Provider)
	}
}
