// Package billing derives read-only views over bills, clients, payments and
// services. Every function is pure: it performs no I/O and returns the same
// result for the same inputs and clock reading.
package billing

import (
	"time"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

// EffectiveStatus returns the status a bill should be reported with at now.
// A pending bill is overdue once now is strictly after its due date; the
// stored status is never rewritten.
func EffectiveStatus(bill *entity.Bill, now time.Time) enum.BillStatus {
	if bill.Status == enum.BillStatusPending && now.After(bill.DueDate) {
		return enum.BillStatusOverdue
	}
	return bill.Status
}
