// Package seed loads the demo dataset into any Entity Store backend.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
)

//go:embed seed.json
var defaultData []byte

// Data is the demo dataset
type Data struct {
	Clients    []entity.Client    `json:"clients"`
	Bills      []entity.Bill      `json:"bills"`
	Payments   []entity.Payment   `json:"payments"`
	Quotations []entity.Quotation `json:"quotations"`
	Services   []entity.Service   `json:"services"`
}

// Default parses the embedded dataset. Bill and quotation totals are
// derived from their items.
func Default() (*Data, error) {
	return Parse(defaultData)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	for i := range data.Bills {
		data.Bills[i].Recalculate()
	}
	for i := range data.Quotations {
		data.Quotations[i].Recalculate()
	}
	return &data, nil
}

// Result counts the records inserted by Apply
type Result struct {
	Clients    int
	Bills      int
	Payments   int
	Quotations int
	Services   int
}

// Apply inserts every record of data that store does not hold yet
func Apply(ctx context.Context, store domainRepo.Store, data *Data) (Result, error) {
	var res Result

	for i := range data.Clients {
		c := data.Clients[i]
		existing, err := store.Clients().GetByID(ctx, c.ID)
		if err != nil {
			return res, err
		}
		if existing == nil {
			if err := store.Clients().Create(ctx, &c); err != nil {
				return res, fmt.Errorf("seed client %s: %w", c.Name, err)
			}
			res.Clients++
		}
	}

	for i := range data.Services {
		s := data.Services[i]
		existing, err := store.Services().GetByID(ctx, s.ID)
		if err != nil {
			return res, err
		}
		if existing == nil {
			if err := store.Services().Create(ctx, &s); err != nil {
				return res, fmt.Errorf("seed service %s: %w", s.Name, err)
			}
			res.Services++
		}
	}

	for i := range data.Bills {
		b := *data.Bills[i].Clone()
		existing, err := store.Bills().GetByID(ctx, b.ID)
		if err != nil {
			return res, err
		}
		if existing == nil {
			if err := store.Bills().Create(ctx, &b); err != nil {
				return res, fmt.Errorf("seed bill %s: %w", b.BillNumber, err)
			}
			res.Bills++
		}
	}

	for i := range data.Payments {
		p := *data.Payments[i].Clone()
		existing, err := store.Payments().GetByID(ctx, p.ID)
		if err != nil {
			return res, err
		}
		if existing == nil {
			if err := store.Payments().Create(ctx, &p); err != nil {
				return res, fmt.Errorf("seed payment %s: %w", p.ID, err)
			}
			res.Payments++
		}
	}

	for i := range data.Quotations {
		q := *data.Quotations[i].Clone()
		existing, err := store.Quotations().GetByID(ctx, q.ID)
		if err != nil {
			return res, err
		}
		if existing == nil {
			if err := store.Quotations().Create(ctx, &q); err != nil {
				return res, fmt.Errorf("seed quotation %s: %w", q.ID, err)
			}
			res.Quotations++
		}
	}

	return res, nil
}
