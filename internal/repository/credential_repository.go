package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	credentialProviderKey = "STORE_PROVIDER"
	credentialURLKey      = "STORE_URL"
	credentialSecretKey   = "STORE_KEY"
)

// CredentialRepositoryImpl keeps remote store credentials in a local dotenv file.
type CredentialRepositoryImpl struct {
	mu   sync.Mutex
	path string
}

func CreateCredentialRepository(path string) CredentialRepository {
	return &CredentialRepositoryImpl{path: path}
}

func (r *CredentialRepositoryImpl) GetCredentials(ctx context.Context) (data domain.StoreCredentials, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := godotenv.Read(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCredentials").Msg("")
		return data, err
	}

	data.Provider = domain.StoreProvider(values[credentialProviderKey])
	data.URL = values[credentialURLKey]
	data.Key = values[credentialSecretKey]

	return data, nil
}

func (r *CredentialRepositoryImpl) SaveCredentials(ctx context.Context, data domain.StoreCredentials) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, err := godotenv.Marshal(map[string]string{
		credentialProviderKey: string(data.Provider),
		credentialURLKey:      data.URL,
		credentialSecretKey:   data.Key,
	})
	if err != nil {
		return err
	}

	if err = writePrivateFile(r.path, []byte(content+"\n")); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveCredentials").Msg("")
		return err
	}

	return nil
}

// writePrivateFile replaces path with a file that is owner-only from creation.
func writePrivateFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".credentials-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
