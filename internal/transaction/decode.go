package transaction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind tells which case of a transaction list response was decoded.
type Kind int

const (
	// KindOK is a list of raw entries.
	KindOK Kind = iota
	// KindEmpty is a response signaling that there is no data.
	KindEmpty
	// KindError is any response shape that is not understood.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindEmpty:
		return "empty"
	}
	return "error"
}

var ErrUnexpectedFormat = errors.New("unexpected data format from API")

// Result is a decoded transaction list response.
//
// Entries is only set for KindOK, Message for KindEmpty and Err for KindError.
type Result struct {
	Kind    Kind
	Entries []any
	Message string
	Err     error
}

// Decode decodes the body of a transaction list response. Accepted shapes are
//
//   - a top level array
//   - an object with an array under "transactions"
//   - an object with an array under "data"
//   - an object with a "message", meaning there are no transactions
//
// Everything else decodes to KindError.
func Decode(body []byte) Result {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return Result{Kind: KindError, Err: fmt.Errorf("%w: %w", ErrUnexpectedFormat, err)}
	}

	switch v := payload.(type) {
	case []any:
		return Result{Kind: KindOK, Entries: v}
	case map[string]any:
		for _, key := range []string{"transactions", "data"} {
			if list, ok := v[key].([]any); ok {
				return Result{Kind: KindOK, Entries: list}
			}
		}

		if message, ok := v["message"]; ok {
			return Result{Kind: KindEmpty, Message: text(message)}
		}
	}

	return Result{Kind: KindError, Err: ErrUnexpectedFormat}
}

// Transactions normalizes the entries of the result.
//
// An empty result gives an empty list, an error result gives a nil list
// and the error.
func (r Result) Transactions(n Normalizer) ([]Transaction, error) {
	switch r.Kind {
	case KindOK:
		return n.NormalizeAll(r.Entries), nil
	case KindEmpty:
		return []Transaction{}, nil
	}

	if r.Err == nil {
		return nil, ErrUnexpectedFormat
	}
	return nil, r.Err
}
