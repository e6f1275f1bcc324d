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

// HandshakeHandler exposes code issuance and verification for both ends of
// the job. The plaintext code appears only in the issue response; verify
// requests carry it back and everything stored or logged is the hash side.

type HandshakeHandler struct {
	usecase usecase.IHandshakeUseCase
}

func NewHandshakeHandler(uc usecase.IHandshakeUseCase) *HandshakeHandler {
	return &HandshakeHandler{usecase: uc}
}

func (h *HandshakeHandler) IssueStartCode(c *gin.Context) {
	h.issue(c, "start", h.usecase.IssueStartCode)
}

func (h *HandshakeHandler) IssueEndCode(c *gin.Context) {
	h.issue(c, "end", h.usecase.IssueEndCode)
}

func (h *HandshakeHandler) VerifyStartCode(c *gin.Context) {
	h.verify(c, "start", h.usecase.VerifyStartCode)
}

func (h *HandshakeHandler) VerifyEndCode(c *gin.Context) {
	h.verify(c, "end", h.usecase.VerifyEndCode)
}

func (h *HandshakeHandler) issue(
	c *gin.Context,
	side string,
	issuer func(ctx context.Context, actor entities.Actor, jobID string, regenerate bool) (usecase.IssuedCode, error),
) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	// Body is optional; an empty body means a plain first issuance.
	var payload request.IssueCodeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	jobID := c.Param("job_id")
	issued, err := issuer(c.Request.Context(), actor, jobID, payload.Regenerate)
	if err != nil {
		log.Printf("[handshake][handler] issue failed side=%s job_id=%s err=%v", side, jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[handshake][handler] issue success side=%s job_id=%s", side, jobID)

	c.JSON(http.StatusCreated, response.FromIssuedCode(issued))
}

func (h *HandshakeHandler) verify(
	c *gin.Context,
	side string,
	verifier func(ctx context.Context, actor entities.Actor, jobID, plaintext string) (entities.Job, error),
) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var payload request.VerifyCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	job, err := verifier(c.Request.Context(), actor, jobID, payload.Code)
	if err != nil {
		log.Printf("[handshake][handler] verify failed side=%s job_id=%s err=%v", side, jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[handshake][handler] verify success side=%s job_id=%s status=%s", side, jobID, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}
