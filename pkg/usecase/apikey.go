package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/interfaces"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/model"
	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// APIKeys manages programmatic access keys
type APIKeys struct {
	repo  interfaces.Repository
	clock func() time.Time
}

// NewAPIKeys creates an APIKeys use case
func NewAPIKeys(repo interfaces.Repository) *APIKeys {
	return &APIKeys{
		repo:  repo,
		clock: time.Now,
	}
}

// Create issues a new named key. The secret is only returned here; list
// responses carry it as stored.
func (u *APIKeys) Create(ctx context.Context, name string) (*model.APIKey, error) {
	if name == "" {
		return nil, goerr.New("API key name is required")
	}

	key, err := model.NewAPIKey(name, u.clock())
	if err != nil {
		return nil, err
	}
	if err := u.repo.PutAPIKey(ctx, key); err != nil {
		return nil, goerr.Wrap(err, "failed to store API key")
	}
	return key, nil
}

// List returns all issued keys, newest first
func (u *APIKeys) List(ctx context.Context) ([]*model.APIKey, error) {
	keys, err := u.repo.ListAPIKeys(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list API keys")
	}
	return keys, nil
}

// Delete revokes a key
func (u *APIKeys) Delete(ctx context.Context, id types.APIKeyID) error {
	return u.repo.DeleteAPIKey(ctx, id)
}
