package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

type quotationRepository struct {
	s *Store
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	assignQuotationItemIDs(quotation)
	r.s.stamp(&quotation.CreatedAt, &quotation.UpdatedAt)
	r.s.quotations = append(r.s.quotations, *quotation.Clone())
	return nil
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.quotations {
		if r.s.quotations[i].ID == id {
			return r.s.quotations[i].Clone(), nil
		}
	}
	return nil, nil
}

func (r *quotationRepository) GetAll(ctx context.Context) ([]entity.Quotation, error) {
	return r.list(ctx, func(entity.Quotation) bool { return true })
}

func (r *quotationRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Quotation, error) {
	return r.list(ctx, func(q entity.Quotation) bool { return q.ClientID == clientID })
}

func (r *quotationRepository) list(ctx context.Context, match func(entity.Quotation) bool) ([]entity.Quotation, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Quotation, 0, len(r.s.quotations))
	for i := range r.s.quotations {
		if match(r.s.quotations[i]) {
			out = append(out, *r.s.quotations[i].Clone())
		}
	}
	return out, nil
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	assignQuotationItemIDs(quotation)
	r.s.stamp(&quotation.CreatedAt, &quotation.UpdatedAt)
	for i := range r.s.quotations {
		if r.s.quotations[i].ID == quotation.ID {
			r.s.quotations[i] = *quotation.Clone()
			return nil
		}
	}
	r.s.quotations = append(r.s.quotations, *quotation.Clone())
	return nil
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.quotations {
		if r.s.quotations[i].ID == id {
			r.s.quotations[i].Status = status
			r.s.quotations[i].UpdatedAt = r.s.now()
		}
	}
	return nil
}

func (r *quotationRepository) MarkConverted(ctx context.Context, id, billID uuid.UUID) (bool, error) {
	if err := r.s.wait(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.quotations {
		q := &r.s.quotations[i]
		if q.ID != id {
			continue
		}
		if q.BillID != nil {
			return false, nil
		}
		linked := billID
		q.BillID = &linked
		q.UpdatedAt = r.s.now()
		return true, nil
	}
	return false, nil
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.quotations = removeWhere(r.s.quotations, func(q entity.Quotation) bool { return q.ID == id })
	return nil
}

func assignQuotationItemIDs(q *entity.Quotation) {
	for i := range q.Items {
		if q.Items[i].ID == uuid.Nil {
			q.Items[i].ID = uuid.New()
		}
		q.Items[i].QuotationID = q.ID
		q.Items[i].Position = i
	}
}
