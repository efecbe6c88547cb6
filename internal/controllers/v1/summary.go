package v1

import (
	"net/http"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data  *aggregate.Summary `json:"data"`
	Error *string            `json:"error" example:"the transaction API could not be reached"`
}

type InsightListResponse struct {
	Data  []budget.Insight `json:"data"`
	Error *string          `json:"error" example:"the transaction API could not be reached"`
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSummary)
	r.GET("", co.GetSummary)
}

func (co Controller) RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsInsights)
	r.GET("", co.GetInsights)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns income, expenses, net balance and the category and month breakdowns of all transactions
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		502	{object}	SummaryResponse
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary := aggregate.Aggregate(transactions)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights [options]
func (co Controller) OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Returns the budget insights for the spending of a month and the budget limits
// @Tags			Insights
// @Produce		json
// @Success		200		{object}	InsightListResponse
// @Failure		400		{object}	InsightListResponse
// @Failure		500		{object}	InsightListResponse
// @Failure		502		{object}	InsightListResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	month, err := co.budgetMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightListResponse{Error: &e})
		return
	}

	snapshot, err := co.dashboard().Snapshot(c.Request.Context(), month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, InsightListResponse{Data: snapshot.Insights})
}
