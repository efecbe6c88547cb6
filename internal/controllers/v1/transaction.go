package v1

import (
	"context"
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/transaction"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	{
		r.OPTIONS("/recent", co.OptionsTransactionRecent)
		r.GET("/recent", co.GetRecentTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PUT("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/recent [options]
func (co Controller) OptionsTransactionRecent(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List transactions
// @Description	Returns the normalized transactions of the transaction API
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		502			{object}	TransactionListResponse
// @Param			category	query		string	false	"Filter by category"
// @Param			type		query		string	false	"Filter by type"	Enums(income, expense)
// @Param			title		query		string	false	"Filter by title with a glob pattern, e.g. *coffee*"
// @Param			month		query		string	false	"Filter by month in YYYY-MM format"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	match, err := filter.matcher()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if match(t) {
			data = append(data, newTransaction(t))
		}
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Recent transactions
// @Description	Returns the most recent transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Failure		502		{object}	TransactionListResponse
// @Param			count	query		int	false	"Number of transactions. Defaults to 5, -1 returns all"
// @Router			/v1/transactions/recent [get]
func (co Controller) GetRecentTransactions(c *gin.Context) {
	count, err := httputil.QueryInt(c, "count", transaction.DefaultRecentCount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	transactions, err := co.Transactions.Fetch(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: newTransactions(transaction.Recent(transactions, count))})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		502	{object}	TransactionResponse
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	t, err := co.findTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(t)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Create transaction
// @Description	Creates a new transaction with the transaction API
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		502			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	input, t, err := editable.remote()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	id, err := co.Transactions.Add(c.Request.Context(), input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	t.ID = id
	log.Debug().Str("id", id).Str("category", t.Category).Msg("transaction created")

	data := newTransaction(t)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		502			{object}	TransactionResponse
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	existing, err := co.findTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	// Unset fields keep their current values. An explicit type stays
	// unless the request sets one.
	update := editable(existing)
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	t, err := update.transaction(existing.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	if err := co.Transactions.Edit(c.Request.Context(), t); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(t)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	t, err := co.findTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Transactions.Delete(c.Request.Context(), t.ID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// findTransaction returns the transaction with the id. The transaction API
// has no endpoint for single transactions, so the list is searched.
func (co Controller) findTransaction(ctx context.Context, id string) (transaction.Transaction, error) {
	transactions, err := co.Transactions.Fetch(ctx)
	if err != nil {
		return transaction.Transaction{}, err
	}

	for _, t := range transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return transaction.Transaction{}, errTransactionNotFound
}
