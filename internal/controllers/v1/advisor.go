package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/findash/backend/internal/advisor"
	"github.com/findash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Advisor struct {
	Welcome     string               `json:"welcome" example:"Hello! I am your AI Financial Advisor."`
	Suggestions []advisor.Suggestion `json:"suggestions"`
}

type AdvisorResponse struct {
	Data Advisor `json:"data"`
}

type AdvisorQuestion struct {
	Message string `json:"message" binding:"required" example:"How can I save more money each month?"`
}

type AdvisorAnswer struct {
	Question string `json:"question" example:"How can I save more money each month?"`
	Answer   string `json:"answer" example:"Start by tracking every expense for a month."`
}

type AdvisorAnswerResponse struct {
	Data  *AdvisorAnswer `json:"data"`
	Error *string        `json:"error" example:"the financial advisor is not configured"`
}

func (co Controller) RegisterAdvisorRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsAdvisor)
		r.GET("", co.GetAdvisor)
	}

	{
		r.OPTIONS("/messages", co.OptionsAdvisorMessages)
		r.POST("/messages", co.CreateAdvisorMessage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advisor
// @Success		204
// @Router			/v1/advisor [options]
func (co Controller) OptionsAdvisor(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advisor
// @Success		204
// @Router			/v1/advisor/messages [options]
func (co Controller) OptionsAdvisorMessages(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Advisor greeting
// @Description	Returns the welcome message and the suggested questions of the financial advisor
// @Tags			Advisor
// @Produce		json
// @Success		200	{object}	AdvisorResponse
// @Router			/v1/advisor [get]
func (co Controller) GetAdvisor(c *gin.Context) {
	c.JSON(http.StatusOK, AdvisorResponse{Data: Advisor{
		Welcome:     advisor.Welcome,
		Suggestions: advisor.Suggestions(),
	}})
}

// @Summary		Ask the advisor
// @Description	Sends a question to the financial advisor and returns its answer
// @Tags			Advisor
// @Accept			json
// @Produce		json
// @Success		200			{object}	AdvisorAnswerResponse
// @Failure		400			{object}	AdvisorAnswerResponse
// @Failure		502			{object}	AdvisorAnswerResponse
// @Failure		503			{object}	AdvisorAnswerResponse
// @Param			question	body		AdvisorQuestion	true	"Question"
// @Router			/v1/advisor/messages [post]
func (co Controller) CreateAdvisorMessage(c *gin.Context) {
	var question AdvisorQuestion
	if err := httputil.BindData(c, &question); err != nil {
		e := err.Error()
		c.JSON(status(err), AdvisorAnswerResponse{Error: &e})
		return
	}

	answer, err := co.advisor().Ask(c.Request.Context(), question.Message)
	if err != nil {
		if !errors.Is(err, advisor.ErrNotConfigured) && !errors.Is(err, advisor.ErrEmptyQuestion) {
			log.Error().Err(err).Msg("advisor")
			err = fmt.Errorf("%w: %w", errAdvisorFailed, err)
		}

		e := err.Error()
		c.JSON(status(err), AdvisorAnswerResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AdvisorAnswerResponse{Data: &AdvisorAnswer{
		Question: strings.TrimSpace(question.Message),
		Answer:   answer,
	}})
}
