package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

type serviceRepository struct {
	s *Store
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	r.s.stamp(&service.CreatedAt, &service.UpdatedAt)
	r.s.services = append(r.s.services, *service.Clone())
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.services {
		if r.s.services[i].ID == id {
			return r.s.services[i].Clone(), nil
		}
	}
	return nil, nil
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]entity.Service, error) {
	return r.list(ctx, func(entity.Service) bool { return true })
}

func (r *serviceRepository) GetActive(ctx context.Context) ([]entity.Service, error) {
	return r.list(ctx, func(s entity.Service) bool { return s.IsActive })
}

func (r *serviceRepository) GetByCategory(ctx context.Context, category enum.ServiceCategory) ([]entity.Service, error) {
	return r.list(ctx, func(s entity.Service) bool { return s.IsActive && s.Category == category })
}

func (r *serviceRepository) list(ctx context.Context, match func(entity.Service) bool) ([]entity.Service, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Service, 0, len(r.s.services))
	for i := range r.s.services {
		if match(r.s.services[i]) {
			out = append(out, r.s.services[i])
		}
	}
	return out, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&service.CreatedAt, &service.UpdatedAt)
	for i := range r.s.services {
		if r.s.services[i].ID == service.ID {
			r.s.services[i] = *service.Clone()
			return nil
		}
	}
	r.s.services = append(r.s.services, *service.Clone())
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.services = removeWhere(r.s.services, func(s entity.Service) bool { return s.ID == id })
	return nil
}
