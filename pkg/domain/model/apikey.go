package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aiwatch-dev/aiwatch/pkg/domain/types"
)

// APIKey is a named access key record. Keys are currently decorative: no
// endpoint enforces them, matching the deployed client. They exist so users
// can pre-register keys ahead of enforcement.
type APIKey struct {
	ID        types.APIKeyID `json:"id" firestore:"id"`
	Name      string         `json:"name" firestore:"name"`
	Key       string         `json:"key" firestore:"key"`
	CreatedAt time.Time      `json:"createdAt" firestore:"createdAt"`
}

// NewAPIKey creates a named key with a random 32-byte hex secret
func NewAPIKey(name string, now time.Time) (*APIKey, error) {
	if name == "" {
		return nil, goerr.New("API key name is required")
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, goerr.Wrap(err, "failed to generate API key secret")
	}

	return &APIKey{
		ID:        types.NewAPIKeyID(),
		Name:      name,
		Key:       "aiw_" + hex.EncodeToString(secret),
		CreatedAt: now,
	}, nil
}
