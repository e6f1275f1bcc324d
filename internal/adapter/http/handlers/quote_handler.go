package handlers

import (
	"log"
	"net/http"

	request "conserta_ja/internal/adapter/http/dto/request"
	response "conserta_ja/internal/adapter/http/dto/response"
	"conserta_ja/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote submission and the customer's accept/reject
// decision for diagnose-first jobs.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	job, err := h.usecase.SubmitQuote(c.Request.Context(), actor, jobID, payload.LaborCost, payload.MaterialsCost)
	if err != nil {
		log.Printf("[quote][handler] submit failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] submit success job_id=%s total=%.2f", jobID, job.Quote.Total)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *QuoteHandler) RespondToQuote(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var payload request.QuoteDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	job, err := h.usecase.RespondToQuote(c.Request.Context(), actor, jobID, *payload.Accept)
	if err != nil {
		log.Printf("[quote][handler] respond failed job_id=%s accept=%t err=%v", jobID, *payload.Accept, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}
