package transaction

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/findash/backend/internal/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// legacyCategoryKey is a misspelling of "category" that older versions of the
// transaction API still send.
const legacyCategoryKey = "cateogry"

// dateLayouts are tried in order when parsing the date of a raw record.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Normalizer converts raw records into canonical transactions.
//
// Normalization never fails, fields that cannot be used are replaced with
// their defaults.
type Normalizer struct {
	// Now is used as the date of records without a usable date.
	// time.Now is used when it is nil.
	Now func() time.Time
}

// Normalize converts a single raw record. The record is not modified.
func (n Normalizer) Normalize(raw RawRecord) Transaction {
	t := n.fields(raw)
	if t.ID == "" {
		t.ID = deriveID(raw, 0)
	}

	return t
}

// NormalizeAll normalizes every object in entries. Entries that are not
// objects are dropped without affecting the others.
//
// Records without an id receive an id derived from their content. Identical
// records are told apart by the order they appear in.
func (n Normalizer) NormalizeAll(entries []any) []Transaction {
	transactions := make([]Transaction, 0, len(entries))
	occurrences := make(map[string]int)

	for _, entry := range entries {
		raw, ok := asRecord(entry)
		if !ok {
			continue
		}

		t := n.fields(raw)
		if t.ID == "" {
			key := string(fingerprint(raw))
			t.ID = deriveID(raw, occurrences[key])
			occurrences[key]++
		}

		transactions = append(transactions, t)
	}

	if dropped := len(entries) - len(transactions); dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("kept", len(transactions)).Msg("normalize")
	}

	return transactions
}

func (n Normalizer) fields(raw RawRecord) Transaction {
	amount, _ := parseAmount(raw["amount"])
	date, clock := n.date(raw["date"])

	t := Transaction{
		ID:       text(raw["id"]),
		Title:    firstText(raw, DefaultTitle, "title", "description"),
		Category: firstText(raw, DefaultCategory, "category", legacyCategoryKey),
		Amount:   amount.Abs(),
		Date:     date,
		Time:     firstText(raw, clock, "time"),
	}

	typ, err := ParseType(text(raw["type"]))
	switch {
	case err == nil:
		t.Type = typ
	case amount.IsPositive():
		t.Type = TypeIncome
	default:
		t.Type = TypeExpense
	}

	return t
}

// date returns the calendar date of v and the time of day it carries.
// The time of day is DefaultTime unless v is a timestamp.
func (n Normalizer) date(v any) (string, string) {
	if s := strings.TrimSpace(text(v)); s != "" {
		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, s)
			if err != nil {
				continue
			}
			if layout == DateLayout {
				return parsed.Format(DateLayout), DefaultTime
			}
			return parsed.Format(DateLayout), parsed.Format(TimeLayout)
		}
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return now().Format(DateLayout), DefaultTime
}

// asRecord reports whether entry is a non-nil JSON object.
func asRecord(entry any) (RawRecord, bool) {
	switch v := entry.(type) {
	case RawRecord:
		return v, v != nil
	case map[string]any:
		return RawRecord(v), v != nil
	}

	return nil, false
}

// firstText returns the first non-blank text value of keys, or fallback.
func firstText(raw RawRecord, fallback string, keys ...string) string {
	for _, key := range keys {
		if s := text(raw[key]); strings.TrimSpace(s) != "" {
			return s
		}
	}

	return fallback
}

// text returns strings as is and numbers in their shortest decimal form.
// All other values yield the empty string.
func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}

	return ""
}

// parseAmount parses numbers and numeric strings. ok is false when v is
// not numeric, the amount is zero then.
func parseAmount(v any) (amount decimal.Decimal, ok bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case json.Number, string:
		d, err := decimal.NewFromString(strings.TrimSpace(text(x)))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}

	return decimal.Zero, false
}

// fingerprint returns a stable representation of the record content.
func fingerprint(raw RawRecord) []byte {
	// Map keys are sorted by both encoding/json and fmt
	b, err := json.Marshal(raw)
	if err != nil {
		return []byte(fmt.Sprintf("%v", map[string]any(raw)))
	}
	return b
}

func deriveID(raw RawRecord, occurrence int) string {
	data := fingerprint(raw)
	if occurrence > 0 {
		data = append(data, fmt.Sprintf("#%d", occurrence)...)
	}

	return uuid.Derive(data).String()
}
