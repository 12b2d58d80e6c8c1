package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and account ID
	GetByKey(ctx context.Context, key string, accountID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Reserve inserts ikey unless a key with the same name is live at now.
	// It reports false when the name is already taken.
	Reserve(ctx context.Context, ikey *entity.IdempotencyKey, now time.Time) (bool, error)
	// Complete stores the response of a reserved key
	Complete(ctx context.Context, key string, accountID uuid.UUID, code int, body string) error
	// Release drops a reservation so the request can be retried
	Release(ctx context.Context, key string, accountID uuid.UUID) error
	// DeleteExpired removes keys that expired before now
	DeleteExpired(ctx context.Context, now time.Time) error
}
