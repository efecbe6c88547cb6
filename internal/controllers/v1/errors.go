package v1

import (
	"errors"
	"net/http"

	"github.com/findash/backend/internal/advisor"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/remote"
	"github.com/findash/backend/internal/transaction"
)

type httpError struct {
	Error string `json:"error" example:"the transaction API responded with status 500: database down"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, errTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, advisor.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, remote.ErrUnavailable),
		errors.Is(err, transaction.ErrUnexpectedFormat),
		errors.Is(err, errAdvisorFailed):
		return http.StatusBadGateway
	}

	var remoteErr *remote.Error
	if errors.As(err, &remoteErr) {
		if remoteErr.Status == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

var (
	errTransactionNotFound = errors.New("there is no transaction with this ID")
	errAmountZero          = errors.New("the amount must not be zero")
	errCategoryEmpty       = errors.New("the category must not be empty")
	errAdvisorFailed       = errors.New("the financial advisor could not answer")
)
