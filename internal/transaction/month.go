package transaction

import "github.com/findash/backend/internal/types"

// Month reports the month the transaction occurred in. ok is false when the
// date cannot be parsed.
func (t Transaction) Month() (m types.Month, ok bool) {
	m, err := types.ParseDateToMonth(t.Date)
	return m, err == nil
}

// InMonth returns the transactions dated in month, in their original order.
func InMonth(txs []Transaction, month types.Month) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if m, ok := t.Month(); ok && m.Equal(month) {
			out = append(out, t)
		}
	}
	return out
}
