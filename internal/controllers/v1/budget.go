package v1

import (
	"net/http"
	"strings"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/notify"
	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type BudgetListResponse struct {
	Data  []budget.CategoryAggregate `json:"data"`
	Error *string                    `json:"error" example:"the transaction API could not be reached"`
}

type BudgetResponse struct {
	Data  *budget.CategoryAggregate `json:"data"`
	Error *string                   `json:"error" example:"the budget limit must not be negative"`
}

type BudgetEditable struct {
	Limit decimal.Decimal `json:"limit" swaggertype:"string" example:"5000"` // Monthly limit. 0 removes the budget
}

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
	}

	// Budget for a category
	{
		r.OPTIONS("/:category", co.OptionsBudgetDetail)
		r.GET("/:category", co.GetBudget)
		r.PUT("/:category", co.SetBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			category	path	string	true	"Name of the category"
// @Router			/v1/budgets/{category} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		List budgets
// @Description	Compares the spending of a month in every category that has expenses or a budget limit with its limit
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Failure		502		{object}	BudgetListResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	month, err := co.budgetMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	snapshot, err := co.dashboard().Snapshot(c.Request.Context(), month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: snapshot.Budgets})
}

// @Summary		Get budget
// @Description	Compares the spending of a category in a month with its budget limit
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Failure		500			{object}	BudgetResponse
// @Failure		502			{object}	BudgetResponse
// @Param			category	path		string	true	"Name of the category"
// @Param			month		query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budgets/{category} [get]
func (co Controller) GetBudget(c *gin.Context) {
	name := strings.TrimSpace(c.Param("category"))
	if name == "" {
		e := errCategoryEmpty.Error()
		c.JSON(status(errCategoryEmpty), BudgetResponse{Error: &e})
		return
	}

	month, err := co.budgetMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	limit, _, err := co.Budgets.Get(c.Request.Context(), name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	spending := aggregate.Aggregate(transaction.InMonth(transactions, month))
	data := budget.CompareOne(spending, name, limit)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Set budget
// @Description	Sets the monthly budget limit of a category and returns the comparison with the spending of the current month
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Failure		500			{object}	BudgetResponse
// @Param			category	path		string			true	"Name of the category"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{category} [put]
func (co Controller) SetBudget(c *gin.Context) {
	name := strings.TrimSpace(c.Param("category"))
	if name == "" {
		e := errCategoryEmpty.Error()
		c.JSON(status(errCategoryEmpty), BudgetResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	if err := budget.ValidateLimit(editable.Limit); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	if err := co.Budgets.Set(c.Request.Context(), name, editable.Limit); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	// The limit is stored at this point. Without the transaction list, the
	// comparison is made against no spending and no event is published.
	summary := aggregate.Aggregate(nil)
	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Str("category", name).Msg("budget set without spending")
	} else {
		summary = aggregate.Aggregate(transaction.InMonth(transactions, types.MonthOf(co.now())))
	}

	data := budget.CompareOne(summary, name, editable.Limit)
	if err == nil {
		notify.Send(c.Request.Context(), co.Publisher, notify.NewBudgetEvent(data, co.now()))
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
