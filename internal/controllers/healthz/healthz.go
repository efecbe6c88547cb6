package healthz

import (
	"context"
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type httpError struct {
	Error string `json:"error" example:"the budget store is not reachable"`
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p == nil {
			c.Status(http.StatusNoContent)
			return
		}

		if err := p.Ping(c.Request.Context()); err != nil {
			log.Error().Err(err).Msg("healthz")
			c.JSON(http.StatusInternalServerError, httpError{Error: "the budget store is not reachable"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
