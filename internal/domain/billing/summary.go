package billing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ClientBillingSummary totals a client's bills by effective status
type ClientBillingSummary struct {
	TotalBills    int             `json:"total_bills"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
}

// SummarizeClientBilling totals the bills of clientID. Amounts follow bill
// totals and effective status; payments do not change them.
func SummarizeClientBilling(clientID uuid.UUID, bills []entity.Bill, payments []entity.Payment, now time.Time) ClientBillingSummary {
	summary := ClientBillingSummary{
		TotalBilled:   decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	for i := range bills {
		bill := &bills[i]
		if bill.ClientID != clientID {
			continue
		}
		summary.TotalBills++
		summary.TotalBilled = summary.TotalBilled.Add(bill.Total)
		switch EffectiveStatus(bill, now) {
		case enum.BillStatusPaid:
			summary.PaidAmount = summary.PaidAmount.Add(bill.Total)
		case enum.BillStatusOverdue:
			summary.OverdueAmount = summary.OverdueAmount.Add(bill.Total)
		default:
			summary.PendingAmount = summary.PendingAmount.Add(bill.Total)
		}
	}
	return summary
}

// PaymentProgress describes how much of a bill has been paid
type PaymentProgress struct {
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentPaid decimal.Decimal `json:"percent_paid"`
}

// ComputeBillPaymentProgress sums the payments made against bill. Remaining
// goes negative on overpayment; PercentPaid is clamped to [0, 100] and is 0
// for a zero total.
func ComputeBillPaymentProgress(bill *entity.Bill, payments []entity.Payment) PaymentProgress {
	paid := decimal.Zero
	for _, p := range payments {
		if p.BillID == bill.ID {
			paid = paid.Add(p.Amount)
		}
	}

	percent := decimal.Zero
	if !bill.Total.IsZero() {
		percent = paid.Div(bill.Total).Mul(hundred)
		if percent.LessThan(decimal.Zero) {
			percent = decimal.Zero
		}
		if percent.GreaterThan(hundred) {
			percent = hundred
		}
	}

	return PaymentProgress{
		TotalPaid:   paid,
		Remaining:   bill.Total.Sub(paid),
		PercentPaid: percent.Round(2),
	}
}

// DashboardSummary is the business-wide revenue rollup
type DashboardSummary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	PendingAmount    decimal.Decimal `json:"pending_amount"`
	OverdueAmount    decimal.Decimal `json:"overdue_amount"`
	ThisMonthRevenue decimal.Decimal `json:"this_month_revenue"`
	TotalClients     int             `json:"total_clients"`
	TotalBills       int             `json:"total_bills"`
}

// SummarizeDashboard rolls up all bills by effective status.
//
// ThisMonthRevenue counts paid bills whose creation month equals the month
// of now. The year is not compared, so a paid bill created in the same month
// of an earlier year is included. Payment statistics compare month and year.
func SummarizeDashboard(bills []entity.Bill, clients []entity.Client, now time.Time) DashboardSummary {
	summary := DashboardSummary{
		TotalRevenue:     decimal.Zero,
		PendingAmount:    decimal.Zero,
		OverdueAmount:    decimal.Zero,
		ThisMonthRevenue: decimal.Zero,
		TotalClients:     len(clients),
		TotalBills:       len(bills),
	}
	for i := range bills {
		bill := &bills[i]
		switch EffectiveStatus(bill, now) {
		case enum.BillStatusPaid:
			summary.TotalRevenue = summary.TotalRevenue.Add(bill.Total)
			if bill.CreatedAt.Month() == now.Month() {
				summary.ThisMonthRevenue = summary.ThisMonthRevenue.Add(bill.Total)
			}
		case enum.BillStatusOverdue:
			summary.OverdueAmount = summary.OverdueAmount.Add(bill.Total)
		default:
			summary.PendingAmount = summary.PendingAmount.Add(bill.Total)
		}
	}
	return summary
}

// PaymentStats summarizes received payments
type PaymentStats struct {
	TotalPayments     decimal.Decimal            `json:"total_payments"`
	TotalCount        int                        `json:"total_count"`
	ThisMonthPayments decimal.Decimal            `json:"this_month_payments"`
	MethodBreakdown   map[string]decimal.Decimal `json:"method_breakdown"`
}

// SummarizePaymentStats totals payments overall, for the calendar month of
// now, and per payment method.
func SummarizePaymentStats(payments []entity.Payment, now time.Time) PaymentStats {
	stats := PaymentStats{
		TotalPayments:     decimal.Zero,
		TotalCount:        len(payments),
		ThisMonthPayments: decimal.Zero,
		MethodBreakdown:   make(map[string]decimal.Decimal),
	}
	year, month, _ := now.Date()
	for _, p := range payments {
		stats.TotalPayments = stats.TotalPayments.Add(p.Amount)
		if y, m, _ := p.Date.Date(); y == year && m == month {
			stats.ThisMonthPayments = stats.ThisMonthPayments.Add(p.Amount)
		}
		method := p.Method.String()
		stats.MethodBreakdown[method] = stats.MethodBreakdown[method].Add(p.Amount)
	}
	return stats
}

// ServiceStats summarizes the service catalog
type ServiceStats struct {
	TotalServices  int             `json:"total_services"`
	ActiveServices int             `json:"active_services"`
	AveragePrice   decimal.Decimal `json:"average_price"`
}

// SummarizeServices counts all and active services and averages the price
// over every service, active or not.
func SummarizeServices(services []entity.Service) ServiceStats {
	stats := ServiceStats{TotalServices: len(services), AveragePrice: decimal.Zero}
	if len(services) == 0 {
		return stats
	}
	sum := decimal.Zero
	for _, s := range services {
		if s.IsActive {
			stats.ActiveServices++
		}
		sum = sum.Add(s.Price)
	}
	stats.AveragePrice = sum.Div(decimal.NewFromInt(int64(len(services)))).Round(2)
	return stats
}

// RecentBills returns up to n bills, most recently created first
func RecentBills(bills []entity.Bill, n int) []entity.Bill {
	sorted := make([]entity.Bill, len(bills))
	copy(sorted, bills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ClientPayments returns the payments made against clientID's bills, newest first
func ClientPayments(clientID uuid.UUID, bills []entity.Bill, payments []entity.Payment) []entity.Payment {
	owned := make(map[uuid.UUID]struct{})
	for _, b := range bills {
		if b.ClientID == clientID {
			owned[b.ID] = struct{}{}
		}
	}
	result := make([]entity.Payment, 0)
	for _, p := range payments {
		if _, ok := owned[p.BillID]; ok {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}
