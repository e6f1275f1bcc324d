package handlers

import (
	"context"
	"log"
	"net/http"

	request "conserta_ja/internal/adapter/http/dto/request"
	response "conserta_ja/internal/adapter/http/dto/response"
	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase"

	"github.com/gin-gonic/gin"
)

type jobOperation = func(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error)

// JobHandler handles the lifecycle endpoints: booking, acceptance,
// cancellation, disputes and payout release.

type JobHandler struct {
	usecase usecase.IJobLifecycleUseCase
}

func NewJobHandler(uc usecase.IJobLifecycleUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[job][handler] create failed provider_id=%s err=%v", payload.ProviderID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	job, err := h.usecase.GetJob(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	jobs, err := h.usecase.ListJobs(c.Request.Context(), actor)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) AcceptJob(c *gin.Context) {
	h.patchJob(c, h.usecase.AcceptJob)
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	h.patchJob(c, h.usecase.CancelJob)
}

func (h *JobHandler) FlagDispute(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var payload request.DisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	job, err := h.usecase.FlagDispute(c.Request.Context(), actor, jobID, payload.Reason)
	if err != nil {
		log.Printf("[job][handler] dispute flag failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ResolveDispute(c *gin.Context) {
	h.patchJob(c, h.usecase.ResolveDispute)
}

func (h *JobHandler) ReleasePayout(c *gin.Context) {
	h.patchJob(c, h.usecase.ReleasePayout)
}

func (h *JobHandler) patchJob(c *gin.Context, op jobOperation) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	jobID := c.Param("job_id")
	job, err := op(c.Request.Context(), actor, jobID)
	if err != nil {
		log.Printf("[job][handler] operation failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}
