// Package remote is a client for the transaction REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/findash/backend/internal/transaction"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	pathList   = "/api/getTransactions"
	pathAdd    = "/api/addTransaction"
	pathEdit   = "/api/editTransaction"
	pathDelete = "/api/deleteTransaction"

	// maxBodySize limits how much of a response body is read.
	maxBodySize = 10 << 20
)

var ErrUnavailable = errors.New("the transaction API could not be reached")

// Error is a non-successful response of the transaction API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("the transaction API responded with status %d: %s", e.Status, e.Message)
}

// Cache caches the normalized transaction list.
type Cache interface {
	Load(ctx context.Context) ([]transaction.Transaction, bool, error)
	Store(ctx context.Context, transactions []transaction.Transaction) error
	Invalidate(ctx context.Context) error
}

// Client talks to the transaction API.
//
// Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	normalizer transaction.Normalizer
	cache      Cache
}

type Option func(*Client)

// WithCache caches fetched lists in cache. Mutations invalidate it.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithNormalizer sets the normalizer used for fetched records.
func WithNormalizer(n transaction.Normalizer) Option {
	return func(c *Client) {
		c.normalizer = n
	}
}

// New returns a client for the API at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the normalized transaction list.
//
// A response in an unexpected shape is an error, no partial list is returned.
func (c *Client) Fetch(ctx context.Context) ([]transaction.Transaction, error) {
	if c.cache != nil {
		cached, ok, err := c.cache.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("transaction cache")
		}
		if ok {
			fetchTotal.WithLabelValues("cached").Inc()
			return cached, nil
		}
	}

	start := time.Now()
	body, err := c.do(ctx, http.MethodGet, pathList, nil)
	fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	result := transaction.Decode(body)
	fetchTotal.WithLabelValues(result.Kind.String()).Inc()

	transactions, err := result.Transactions(c.normalizer)
	if err != nil {
		log.Error().Err(err).Int("size", len(body)).Msg("transaction API")
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Store(ctx, transactions); err != nil {
			log.Warn().Err(err).Msg("transaction cache")
		}
	}

	return transactions, nil
}

// NewTransaction is a transaction to be created.
type NewTransaction struct {
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        string
	Type        transaction.Type
}

type addPayload struct {
	ID             int64            `json:"id"`
	Amount         json.Number      `json:"amount"`
	Date           string           `json:"date"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	LegacyCategory string           `json:"cateogry"`
	Type           transaction.Type `json:"type"`
}

// Add creates a transaction and returns the id it was created with.
func (c *Client) Add(ctx context.Context, t NewTransaction) (string, error) {
	payload := addPayload{
		ID:             rand.Int64N(1_000_000_000),
		Amount:         json.Number(t.Amount.Abs().String()),
		Date:           t.Date,
		Description:    t.Description,
		Category:       t.Category,
		LegacyCategory: t.Category,
		Type:           t.Type,
	}

	if _, err := c.mutate(ctx, http.MethodPost, pathAdd, payload); err != nil {
		return "", err
	}
	return strconv.FormatInt(payload.ID, 10), nil
}

type editPayload struct {
	ID       any              `json:"id"`
	Title    string           `json:"title"`
	Category string           `json:"category"`
	Amount   json.Number      `json:"amount"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Type     transaction.Type `json:"type"`
}

// Edit replaces the transaction with the same id.
func (c *Client) Edit(ctx context.Context, t transaction.Transaction) error {
	_, err := c.mutate(ctx, http.MethodPut, pathEdit, editPayload{
		ID:       idValue(t.ID),
		Title:    t.Title,
		Category: t.Category,
		Amount:   json.Number(t.Amount.Abs().String()),
		Date:     t.Date,
		Time:     t.Time,
		Type:     t.Type,
	})
	return err
}

// Delete deletes the transaction with the id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.mutate(ctx, http.MethodDelete, pathDelete, map[string]any{"id": idValue(id)})
	return err
}

func (c *Client) mutate(ctx context.Context, method, path string, payload any) ([]byte, error) {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Invalidate(ctx); err != nil {
			log.Warn().Err(err).Msg("transaction cache")
		}
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("transaction API")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	return body, nil
}

// errorMessage extracts a message from an error response body. The body
// may not be JSON at all.
func errorMessage(status int, body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" || strings.HasPrefix(text, "{") || strings.HasPrefix(text, "<") {
		return http.StatusText(status)
	}
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

// idValue sends numeric ids as JSON numbers, as the API created them.
func idValue(id string) any {
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return json.Number(id)
	}
	return id
}
