package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

type paymentRepository struct {
	s *Store
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.insert(payment)
	return nil
}

func (r *paymentRepository) Record(ctx context.Context, payment *entity.Payment, settle bool) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if settle {
		bill := r.s.findBill(payment.BillID)
		if bill == nil {
			return fmt.Errorf("memory: bill %s not found", payment.BillID)
		}
		bill.Status = enum.BillStatusPaid
		bill.UpdatedAt = r.s.now()
	}
	r.insert(payment)
	return nil
}

// insert requires the write lock
func (r *paymentRepository) insert(payment *entity.Payment) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.s.stamp(&payment.CreatedAt, nil)
	if payment.Date.IsZero() {
		payment.Date = payment.CreatedAt
	}
	r.s.payments = append(r.s.payments, *payment.Clone())
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.payments {
		if r.s.payments[i].ID == id {
			return r.s.payments[i].Clone(), nil
		}
	}
	return nil, nil
}

func (r *paymentRepository) GetAll(ctx context.Context) ([]entity.Payment, error) {
	return r.list(ctx, func(entity.Payment) bool { return true })
}

func (r *paymentRepository) GetByBillID(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error) {
	return r.list(ctx, func(p entity.Payment) bool { return p.BillID == billID })
}

func (r *paymentRepository) list(ctx context.Context, match func(entity.Payment) bool) ([]entity.Payment, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Payment, 0, len(r.s.payments))
	for i := range r.s.payments {
		if match(r.s.payments[i]) {
			out = append(out, *r.s.payments[i].Clone())
		}
	}
	return out, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.payments {
		if r.s.payments[i].ID == payment.ID {
			r.s.payments[i] = *payment.Clone()
			return nil
		}
	}
	r.s.payments = append(r.s.payments, *payment.Clone())
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.payments = removeWhere(r.s.payments, func(p entity.Payment) bool { return p.ID == id })
	return nil
}
