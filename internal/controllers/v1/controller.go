package v1

import (
	"context"
	"time"

	"github.com/findash/backend/internal/advisor"
	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/controllers/healthz"
	"github.com/findash/backend/internal/dashboard"
	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/notify"
	"github.com/findash/backend/internal/remote"
	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// Remote is the transaction API.
type Remote interface {
	Fetch(ctx context.Context) ([]transaction.Transaction, error)
	Add(ctx context.Context, t remote.NewTransaction) (string, error)
	Edit(ctx context.Context, t transaction.Transaction) error
	Delete(ctx context.Context, id string) error
}

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Transactions Remote
	Budgets      budget.Store
	Advisor      advisor.Advisor
	Publisher    notify.Publisher
	Health       healthz.Pinger

	// Now defaults to time.Now
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// budgetMonth returns the month set by the "month" query parameter. Budget
// limits are monthly, the current month is used when none is set.
func (co Controller) budgetMonth(c *gin.Context) (types.Month, error) {
	return httputil.QueryMonth(c, "month", types.MonthOf(co.now()))
}

func (co Controller) dashboard() dashboard.Service {
	return dashboard.Service{
		Transactions: co.Transactions,
		Budgets:      co.Budgets,
		Now:          co.now,
	}
}

func (co Controller) advisor() advisor.Advisor {
	if co.Advisor == nil {
		return advisor.Disabled{}
	}
	return co.Advisor
}
