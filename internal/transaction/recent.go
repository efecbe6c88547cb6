package transaction

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// DefaultRecentCount is the number of transactions in a recent list.
const DefaultRecentCount = 5

var timestampLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// Timestamp returns the combined date and time of the transaction.
// It is the zero time when they cannot be parsed.
func (t Transaction) Timestamp() time.Time {
	s := strings.TrimSpace(t.Date + " " + t.Time)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// Recent returns up to n transactions, newest first.
//
// Transactions with equal timestamps keep their relative order.
// Transactions without a valid timestamp sort last. The input is not modified.
func Recent(transactions []Transaction, n int) []Transaction {
	type entry struct {
		transaction Transaction
		at          time.Time
	}

	entries := make([]entry, len(transactions))
	for i, t := range transactions {
		entries[i] = entry{t, t.Timestamp()}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return b.at.Compare(a.at)
	})

	if n < 0 || n > len(entries) {
		n = len(entries)
	}

	recent := make([]Transaction, n)
	for i := range recent {
		recent[i] = entries[i].transaction
	}
	return recent
}
