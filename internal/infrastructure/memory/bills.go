package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/sangkips/billdesk-api/pkg/utils"
)

type billRepository struct {
	s *Store
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	assignBillItemIDs(bill)
	r.s.stamp(&bill.CreatedAt, &bill.UpdatedAt)
	r.s.bills = append(r.s.bills, *bill.Clone())
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.bills {
		if r.s.bills[i].ID == id {
			return r.s.bills[i].Clone(), nil
		}
	}
	return nil, nil
}

func (r *billRepository) GetAll(ctx context.Context) ([]entity.Bill, error) {
	return r.list(ctx, func(entity.Bill) bool { return true })
}

func (r *billRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Bill, error) {
	return r.list(ctx, func(b entity.Bill) bool { return b.ClientID == clientID })
}

func (r *billRepository) list(ctx context.Context, match func(entity.Bill) bool) ([]entity.Bill, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Bill, 0, len(r.s.bills))
	for i := range r.s.bills {
		if match(r.s.bills[i]) {
			out = append(out, *r.s.bills[i].Clone())
		}
	}
	return out, nil
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	assignBillItemIDs(bill)
	r.s.stamp(&bill.CreatedAt, &bill.UpdatedAt)
	for i := range r.s.bills {
		if r.s.bills[i].ID == bill.ID {
			r.s.bills[i] = *bill.Clone()
			return nil
		}
	}
	r.s.bills = append(r.s.bills, *bill.Clone())
	return nil
}

func (r *billRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillStatus) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.bills {
		if r.s.bills[i].ID == id {
			r.s.bills[i].Status = status
			r.s.bills[i].UpdatedAt = r.s.now()
		}
	}
	return nil
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.bills = removeWhere(r.s.bills, func(b entity.Bill) bool { return b.ID == id })
	return nil
}

func (r *billRepository) NextSequence(ctx context.Context, year int) (int, error) {
	if err := r.s.wait(ctx); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	numbers := make([]string, len(r.s.bills))
	for i := range r.s.bills {
		numbers[i] = r.s.bills[i].BillNumber
	}
	return utils.NextBillSequence(numbers, year), nil
}

func assignBillItemIDs(bill *entity.Bill) {
	for i := range bill.Items {
		if bill.Items[i].ID == uuid.Nil {
			bill.Items[i].ID = uuid.New()
		}
		bill.Items[i].BillID = bill.ID
		bill.Items[i].Position = i
	}
}

// findBill requires the write lock
func (s *Store) findBill(id uuid.UUID) *entity.Bill {
	for i := range s.bills {
		if s.bills[i].ID == id {
			return &s.bills[i]
		}
	}
	return nil
}
