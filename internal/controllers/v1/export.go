package v1

import (
	"fmt"
	"net/http"

	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/internal/report"
	"github.com/findash/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export report
// @Description	Returns a report of all transactions as a file download
// @Tags			Export
// @Produce		application/pdf
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			format	query		string	false	"Format of the report. Defaults to pdf"	Enums(pdf, xlsx)
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	snapshot, err := co.dashboard().Snapshot(c.Request.Context(), types.Month{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	document, err := report.Render(format, snapshot)
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("rendering report")
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.FileName(co.now(), format)))
	c.Data(http.StatusOK, format.ContentType(), document)
}
