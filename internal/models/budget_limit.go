package models

import (
	"context"
	"errors"

	"github.com/findash/backend/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// BudgetLimit is the monthly budget limit of a category.
type BudgetLimit struct {
	DefaultModel
	Category string          `json:"category" gorm:"uniqueIndex;not null" example:"Food & Dining"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:amount_not_negative,amount >= 0" example:"5000" swaggertype:"string"`
}

func (BudgetLimit) Self() string {
	return "Budget Limit"
}

// BudgetStore is a budget.Store backed by DB.
type BudgetStore struct{}

var _ budget.Store = BudgetStore{}

func (BudgetStore) Get(ctx context.Context, category string) (decimal.Decimal, bool, error) {
	var limit BudgetLimit

	err := DB.WithContext(ctx).Where(&BudgetLimit{Category: category}).First(&limit).Error
	if errors.Is(err, ErrResourceNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	return limit.Amount, true, nil
}

// Set creates the limit for the category or updates the existing one.
func (BudgetStore) Set(ctx context.Context, category string, amount decimal.Decimal) error {
	if err := budget.ValidateLimit(amount); err != nil {
		return err
	}

	return DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&BudgetLimit{Category: category, Amount: amount}).Error
}

func (BudgetStore) All(ctx context.Context) (budget.Limits, error) {
	var limits []BudgetLimit

	err := DB.WithContext(ctx).Find(&limits).Error
	if err != nil {
		return nil, err
	}

	out := make(budget.Limits, len(limits))
	for _, l := range limits {
		out[l.Category] = l.Amount
	}
	return out, nil
}
