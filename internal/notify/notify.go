// Package notify publishes budget events.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/findash/backend/internal/budget"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetEvent is published when a budget limit is set.
type BudgetEvent struct {
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Status    budget.Status   `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewBudgetEvent returns the event for a category after its limit was set.
func NewBudgetEvent(a budget.CategoryAggregate, now time.Time) BudgetEvent {
	return BudgetEvent{
		Category:  a.Category,
		Limit:     a.TotalBudget,
		Spent:     a.TotalSpent,
		Status:    a.Status,
		Timestamp: now.UTC(),
	}
}

// RoutingKey is "budget." followed by the status.
func (e BudgetEvent) RoutingKey() string {
	return "budget." + string(e.Status)
}

func (e BudgetEvent) body() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, event BudgetEvent) error
}

// Discard drops all events.
type Discard struct{}

func (Discard) Publish(context.Context, BudgetEvent) error {
	return nil
}

// Send publishes the event and logs failures. Events are best effort, a
// failure never fails the operation that caused the event.
func Send(ctx context.Context, p Publisher, event BudgetEvent) {
	if p == nil {
		return
	}

	if err := p.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("category", event.Category).Str("routingKey", event.RoutingKey()).Msg("budget event")
		return
	}

	log.Debug().Str("category", event.Category).Str("routingKey", event.RoutingKey()).Msg("budget event")
}
