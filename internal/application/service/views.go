package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/billing"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

// BillView is a bill as listed, with its client name and effective status
type BillView struct {
	entity.Bill
	ClientName      string          `json:"client_name"`
	EffectiveStatus enum.BillStatus `json:"effective_status"`
}

func newBillViews(bills []entity.Bill, names map[uuid.UUID]string, now time.Time) []BillView {
	views := make([]BillView, len(bills))
	for i := range bills {
		views[i] = BillView{
			Bill:            bills[i],
			ClientName:      billing.NameOr(names, bills[i].ClientID, billing.UnknownClient),
			EffectiveStatus: billing.EffectiveStatus(&bills[i], now),
		}
	}
	return views
}

// PaymentView is a payment with the bill and client it belongs to
type PaymentView struct {
	entity.Payment
	BillNumber string `json:"bill_number"`
	ClientName string `json:"client_name"`
}

func newPaymentViews(payments []entity.Payment, bills []entity.Bill, clients []entity.Client) []PaymentView {
	byID := make(map[uuid.UUID]entity.Bill, len(bills))
	for _, b := range bills {
		byID[b.ID] = b
	}
	names := billing.ClientNames(clients)

	views := make([]PaymentView, len(payments))
	for i, p := range payments {
		view := PaymentView{Payment: p, BillNumber: billing.UnknownBill, ClientName: billing.UnknownClient}
		if bill, ok := byID[p.BillID]; ok {
			view.BillNumber = bill.BillNumber
			view.ClientName = billing.NameOr(names, bill.ClientID, billing.UnknownClient)
		}
		views[i] = view
	}
	return views
}

// QuotationView is a quotation with its client name
type QuotationView struct {
	entity.Quotation
	ClientName string `json:"client_name"`
}

func sortBillsNewestFirst(views []BillView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
}

func sortPaymentsNewestFirst(views []PaymentView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.After(views[j].Date)
	})
}
