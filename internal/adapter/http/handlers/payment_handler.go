package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "conserta_ja/internal/adapter/http/dto/response"
	"conserta_ja/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler collects the final amount for a job awaiting payment.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CollectPayment forwards the raw payment-provider payload to the use case.
// The charge amount always comes from the stored billing record, so the
// payload only carries payer details and payment method.
func (h *PaymentHandler) CollectPayment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	jobID := c.Param("job_id")
	log.Printf("[payment][handler] collect start job_id=%s", jobID)

	payload, err := readPaymentPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CollectPayment(c.Request.Context(), actor, jobID, payload)
	if err != nil {
		log.Printf("[payment][handler] collect failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] collect success job_id=%s payment_id=%s status=%s", jobID, job.PaymentID, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	// Accept either the bare provider payload or an envelope wrapping it.
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
