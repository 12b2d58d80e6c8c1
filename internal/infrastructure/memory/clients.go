package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

type clientRepository struct {
	s *Store
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.s.stamp(&client.CreatedAt, &client.UpdatedAt)
	r.s.clients = append(r.s.clients, *client.Clone())
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.clients {
		if r.s.clients[i].ID == id {
			return r.s.clients[i].Clone(), nil
		}
	}
	return nil, nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]entity.Client, error) {
	if err := r.s.wait(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Client, 0, len(r.s.clients))
	for i := range r.s.clients {
		out = append(out, *r.s.clients[i].Clone())
	}
	return out, nil
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.stamp(&client.CreatedAt, &client.UpdatedAt)
	for i := range r.s.clients {
		if r.s.clients[i].ID == client.ID {
			r.s.clients[i] = *client.Clone()
			return nil
		}
	}
	r.s.clients = append(r.s.clients, *client.Clone())
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.s.wait(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.clients = removeWhere(r.s.clients, func(c entity.Client) bool { return c.ID == id })
	return nil
}

// removeWhere drops every element matching match, keeping order
func removeWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
