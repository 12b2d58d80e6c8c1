package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// Record stores the payment and, when settle is set, marks its bill paid.
	// Either both writes happen or neither does.
	Record(ctx context.Context, payment *entity.Payment, settle bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	GetAll(ctx context.Context) ([]entity.Payment, error)
	GetByBillID(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
