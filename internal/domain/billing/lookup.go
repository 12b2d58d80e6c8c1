package billing

import (
	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
)

// Labels used when a referenced record cannot be found
const (
	UnknownClient = "Unknown Client"
	UnknownBill   = "Unknown Bill"
)

// ClientNames indexes client names by id
func ClientNames(clients []entity.Client) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names
}

// ClientName returns the name of client id, or UnknownClient
func ClientName(clients []entity.Client, id uuid.UUID) string {
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownClient
}

// BillLabel returns the bill number of bill id, or UnknownBill
func BillLabel(bills []entity.Bill, id uuid.UUID) string {
	for _, b := range bills {
		if b.ID == id {
			return b.BillNumber
		}
	}
	return UnknownBill
}

// NameOr returns names[id] or the fallback label
func NameOr(names map[uuid.UUID]string, id uuid.UUID, fallback string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fallback
}
