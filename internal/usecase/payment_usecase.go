package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/infrastructure/observability"
	"conserta_ja/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentDeclined                = errors.New("payment declined")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase collects the amount owed once a job is awaiting payment.
//
// The gateway's approval is what drives awaiting_payment -> completed; the
// charge amount always comes from the stored billing record, never from the
// request payload.

type IPaymentUseCase interface {
	CollectPayment(ctx context.Context, actor entities.Actor, jobID string, payload json.RawMessage) (entities.Job, error)
}

type PaymentUseCase struct {
	repo     interfaces.IJobRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IJobRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, notifier: notifier}
}

func (u *PaymentUseCase) CollectPayment(ctx context.Context, actor entities.Actor, jobID string, payload json.RawMessage) (entities.Job, error) {
	log.Printf("[payment][usecase] collect start job_id=%s payload_len=%d", jobID, len(payload))

	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsCustomerOf(j) && !actor.IsAdmin() {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}
	if j.Status != entities.JobStatusAwaitingPayment {
		log.Printf("[payment][usecase] job not awaiting payment job_id=%s status=%s", jobID, j.Status)
		return entities.Job{}, stateErr(ErrIllegalStateTransition, j)
	}
	if j.Billing == nil {
		return entities.Job{}, stateErr(ErrBillingNotFound, j)
	}
	if u.gateway == nil {
		return entities.Job{}, errors.New("payment gateway not configured")
	}

	mockMode := u.gateway.MockMode()
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload job_id=%s", jobID)
			return entities.Job{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if !mockMode {
		var reqMap map[string]any
		if err := json.Unmarshal(payload, &reqMap); err == nil && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id job_id=%s", jobID)
			return entities.Job{}, ErrInvalidPaymentPayload
		}
	}

	// The charged amount is the reconciled total from the billing record in
	// DB, never a figure from the request payload.
	charge := interfaces.PaymentCharge{
		JobID:       jobID,
		Amount:      j.Billing.FinalTotalCost,
		Description: fmt.Sprintf("Job %s", jobID),
		Payload:     payload,
	}

	log.Printf("[payment][usecase] calling payment gateway job_id=%s amount=%.2f mock=%t", jobID, charge.Amount, mockMode)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, charge)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed job_id=%s err=%v", jobID, err)
		return entities.Job{}, classifyGatewayError(err)
	}

	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[payment][usecase] payment not approved job_id=%s provider_status=%s", jobID, providerStatus)
		return entities.Job{}, stateErr(ErrPaymentDeclined, j)
	}

	updated, err := u.repo.RecordPayment(ctx, jobID, providerPaymentID, providerResp, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, conflictErr(ctx, u.repo, jobID)
		}
		return entities.Job{}, err
	}

	observability.RecordTransition(string(entities.JobStatusAwaitingPayment), string(entities.JobStatusCompleted))
	log.Printf("[payment][usecase] collect success job_id=%s payment_id=%s", jobID, providerPaymentID)
	u.notifier.Notify(ctx, "job.completed", updated.ID)
	return updated, nil
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
