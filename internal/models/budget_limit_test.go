package models_test

import (
	"context"

	"github.com/findash/backend/internal/budget/budgettest"
	"github.com/findash/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetStore() {
	budgettest.TestStore(suite.T(), models.BudgetStore{})
}

func (suite *TestSuiteStandard) TestBudgetStoreUpsertKeepsOneRow() {
	store := models.BudgetStore{}
	ctx := context.Background()

	suite.Require().Nil(store.Set(ctx, "Travel", decimal.NewFromInt(100)))
	suite.Require().Nil(store.Set(ctx, "Travel", decimal.NewFromInt(200)))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetLimit{}).Where("category = ?", "Travel").Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetLimitHasID() {
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Rent", decimal.NewFromInt(100)))

	var limit models.BudgetLimit
	suite.Require().Nil(models.DB.First(&limit).Error)
	suite.Assert().NotEmpty(limit.ID.String())
	suite.Assert().Equal("Budget Limit", limit.Self())
}

func (suite *TestSuiteStandard) TestBudgetStoreDatabaseClosed() {
	suite.CloseDB()

	_, _, err := models.BudgetStore{}.Get(context.Background(), "Food")
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = models.BudgetStore{}.All(context.Background())
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.BudgetStore{}.Set(context.Background(), "Food", decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
