package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

// ClientRepository defines the interface for client data operations.
// GetByID returns nil, nil when the client does not exist.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetAll(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
