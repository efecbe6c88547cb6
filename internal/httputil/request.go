package httputil

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/findash/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ContextURL is the context key under which the API base URL is stored.
const ContextURL = "baseURL"

// BaseURL returns the API base URL set by the router, falling back to the
// host of the request.
func BaseURL(c *gin.Context) string {
	if url := c.GetString(ContextURL); url != "" {
		return strings.TrimSuffix(url, "/")
	}
	return RequestHost(c)
}

// RequestHost returns scheme and host of the request.
//
// The scheme defaults to http and is https if the x-forwarded-proto header
// says so. Behind a reverse proxy setting x-forwarded-host, the
// x-forwarded-prefix header is used as path prefix, defaulting to "/api".
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	if xForwardedHost := c.Request.Header.Get("x-forwarded-host"); xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

// BindData binds the JSON request body to data.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, len(validationErrors))
		for i, e := range validationErrors {
			messages[i] = validationErrorToText(e)
		}
		return fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(messages, ", "))
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be formatted as %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// QueryInt parses the query parameter key as integer. A missing parameter
// returns defaultValue.
func QueryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	value, ok := c.GetQuery(key)
	if !ok || value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQuery, key)
	}
	return parsed, nil
}

// QueryMonth parses the query parameter key as month in YYYY-MM format.
// A missing parameter returns defaultValue.
func QueryMonth(c *gin.Context, key string, defaultValue types.Month) (types.Month, error) {
	value, ok := c.GetQuery(key)
	if !ok || value == "" {
		return defaultValue, nil
	}

	month, err := types.ParseMonth(value)
	if err != nil {
		return types.Month{}, ErrInvalidMonth
	}
	return month, nil
}
