package v1

import (
	"net/http"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/category"
	"github.com/findash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Category is the expense total of a category.
type Category struct {
	Name       string          `json:"name" example:"Food & Dining"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"4520.75"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"string" example:"32.5"` // Share of total expenses in percent
	Icon       string          `json:"icon" example:"ShoppingCart"`
	Color      string          `json:"color" example:"bg-green-500"`
	ChartColor string          `json:"chartColor" example:"#10B981"`
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`
	Error *string    `json:"error" example:"the transaction API could not be reached"`
}

type CategoryOptionListResponse struct {
	Data []category.Option `json:"data"`
}

func newCategories(summary aggregate.Summary) []Category {
	out := make([]Category, len(summary.Categories))
	for i, c := range summary.Categories {
		style := category.Lookup(c.Category)
		out[i] = Category{
			Name:       c.Category,
			Amount:     c.Amount,
			Percentage: summary.CategoryPercentage(c.Category),
			Icon:       style.Icon,
			Color:      style.Color,
			ChartColor: category.ChartColor(i),
		}
	}
	return out
}

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
	}

	{
		r.OPTIONS("/options", co.OptionsCategoryOptions)
		r.GET("/options", co.GetCategoryOptions)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/options [options]
func (co Controller) OptionsCategoryOptions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List category breakdown
// @Description	Returns the expense total per category in the order the categories first appear
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		502	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: newCategories(aggregate.Aggregate(transactions))})
}

// @Summary		List category options
// @Description	Returns the categories offered when creating a transaction
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryOptionListResponse
// @Router			/v1/categories/options [get]
func (co Controller) GetCategoryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryOptionListResponse{Data: category.Options()})
}
