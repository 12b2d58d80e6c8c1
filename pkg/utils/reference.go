package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BillNumber formats a sequential bill number, e.g. BILL-2024-007
func BillNumber(year, seq int) string {
	return fmt.Sprintf("BILL-%d-%03d", year, seq)
}

// BillNumberPrefix returns the prefix shared by all bill numbers of a year
func BillNumberPrefix(year int) string {
	return fmt.Sprintf("BILL-%d-", year)
}

// ManualTransactionRef builds the reference stored on manually recorded payments
func ManualTransactionRef(at time.Time) string {
	return fmt.Sprintf("manual_%d", at.UnixMilli())
}

// NextBillSequence returns one past the highest sequence among the bill
// numbers of year. Numbers of other years or in another format are ignored.
func NextBillSequence(numbers []string, year int) int {
	prefix := BillNumberPrefix(year)
	highest := 0
	for _, n := range numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(n, prefix))
		if err != nil {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return highest + 1
}
