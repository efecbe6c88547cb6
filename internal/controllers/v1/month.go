package v1

import (
	"errors"
	"net/http"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/dashboard"
	"github.com/findash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

var errYearInvalid = errors.New("the year must be between 1 and 9999")

type MonthListResponse struct {
	Data  []aggregate.MonthTotal `json:"data"`
	Error *string                `json:"error" example:"the transaction API could not be reached"`
}

type BudgetMonthListResponse struct {
	Data  []dashboard.BudgetMonth `json:"data"`
	Error *string                 `json:"error" example:"the transaction API could not be reached"`
}

func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMonths)
		r.GET("", co.GetMonths)
	}

	{
		r.OPTIONS("/trend", co.OptionsMonthTrend)
		r.GET("/trend", co.GetMonthTrend)
	}

	{
		r.OPTIONS("/yearly", co.OptionsMonthYearly)
		r.GET("/yearly", co.GetMonthYearly)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/trend [options]
func (co Controller) OptionsMonthTrend(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/yearly [options]
func (co Controller) OptionsMonthYearly(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending trend
// @Description	Returns the expense totals of the most recent months that have expenses, oldest first
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		502		{object}	MonthListResponse
// @Param			count	query		int	false	"Number of months. Defaults to 6, -1 returns all"
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	count, err := httputil.QueryInt(c, "count", aggregate.DefaultTrendMonths)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: aggregate.Aggregate(transactions).Trend(count)})
}

// @Summary		Budget trend
// @Description	Returns the expenses of the last calendar months, including the current one, measured against the total budget
// @Tags			Months
// @Produce		json
// @Success		200		{object}	BudgetMonthListResponse
// @Failure		400		{object}	BudgetMonthListResponse
// @Failure		500		{object}	BudgetMonthListResponse
// @Failure		502		{object}	BudgetMonthListResponse
// @Param			count	query		int	false	"Number of months. Defaults to 6"
// @Router			/v1/months/trend [get]
func (co Controller) GetMonthTrend(c *gin.Context) {
	count, err := httputil.QueryInt(c, "count", aggregate.DefaultTrendMonths)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetMonthListResponse{Error: &e})
		return
	}

	trend, err := co.dashboard().BudgetTrend(c.Request.Context(), count)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetMonthListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetMonthListResponse{Data: trend})
}

// @Summary		Yearly overview
// @Description	Returns the expense totals of all twelve months of a year
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		502		{object}	MonthListResponse
// @Param			year	query		int	false	"The year. Defaults to the current year"
// @Router			/v1/months/yearly [get]
func (co Controller) GetMonthYearly(c *gin.Context) {
	year, err := httputil.QueryInt(c, "year", co.now().Year())
	if err == nil && (year < 1 || year > 9999) {
		err = errYearInvalid
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	months, err := co.dashboard().Yearly(c.Request.Context(), year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: months})
}
