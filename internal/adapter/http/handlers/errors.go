package handlers

import (
	"errors"
	"net/http"

	"conserta_ja/internal/adapter/http/middleware"
	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase"
	"conserta_ja/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapJobError translates use case sentinels into the HTTP envelope. When the
// rejection carries the authoritative job status, it is attached so the
// client can resynchronize without an extra read.
func mapJobError(err error) *pkg.AppError {
	appErr := classifyJobError(err)
	if status, ok := usecase.ActualStatusOf(err); ok {
		appErr.WithActualStatus(string(status))
	}
	return appErr
}

func classifyJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidProviderID),
		errors.Is(err, usecase.ErrInvalidBillingMode),
		errors.Is(err, usecase.ErrInvalidHourlyRate),
		errors.Is(err, usecase.ErrInvalidQuoteValue),
		errors.Is(err, usecase.ErrInvalidDisputeReason),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "No quote submitted for this job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoCodeIssued):
		return pkg.NewDomainErrorSimple("NO_CODE_ISSUED", "No code has been issued for this job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrActorForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor is not allowed to perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCancellationForbidden):
		return pkg.NewDomainErrorSimple("CANCELLATION_FORBIDDEN", "This party cannot cancel the job in its current state", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteLocked):
		return pkg.NewDomainErrorSimple("QUOTE_LOCKED", "Quote has been accepted and can no longer change", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote must be accepted first", http.StatusConflict)
	case errors.Is(err, usecase.ErrCodeAlreadyExists):
		return pkg.NewDomainErrorSimple("CODE_ALREADY_EXISTS", "A live code is already issued for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrCodeAlreadyConsumed):
		return pkg.NewDomainErrorSimple("CODE_ALREADY_CONSUMED", "Code has already been used", http.StatusConflict)
	case errors.Is(err, usecase.ErrCodeExpired):
		return pkg.NewDomainErrorSimple("CODE_EXPIRED", "Code has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrInvalidCode):
		return pkg.NewDomainErrorSimple("INVALID_CODE", "Code does not match", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIllegalStateTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Operation not allowed in the job's current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Job changed while processing the request, retry against its current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingNotFound):
		return pkg.NewDomainErrorSimple("BILLING_NOT_FOUND", "No billing record for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrPayoutHeld):
		return pkg.NewDomainErrorSimple("PAYOUT_HELD", "Payout is held pending dispute resolution", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this payment provider context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mustActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
	return actor, ok
}
