package usecase

import (
	"errors"
	"math"
	"time"

	"conserta_ja/internal/domain/entities"
)

// ErrBillingAlreadyFinalized signals that a billing record was already
// computed for the job. It is informational: finalize is idempotent and
// callers return the stored record instead of failing.
var ErrBillingAlreadyFinalized = errors.New("billing already finalized")

var ErrMissingStartTimestamp = errors.New("missing job start timestamp")

const (
	DefaultPlatformFeeRate    = 0.15
	DefaultBillingUnitMinutes = 15
)

// BillingReconciler computes the write-once ledger entry when a job leaves
// in_progress. It is pure computation: persistence happens atomically with
// the status transition in the handshake use case.

type BillingReconciler struct {
	platformFeeRate    float64
	billingUnitMinutes int
}

func NewBillingReconciler(platformFeeRate float64, billingUnitMinutes int) *BillingReconciler {
	if platformFeeRate <= 0 || platformFeeRate >= 1 {
		platformFeeRate = DefaultPlatformFeeRate
	}
	if billingUnitMinutes <= 0 {
		billingUnitMinutes = DefaultBillingUnitMinutes
	}
	return &BillingReconciler{platformFeeRate: platformFeeRate, billingUnitMinutes: billingUnitMinutes}
}

// Finalize computes the billing record for a job completing at completedAt.
// If a record already exists it is returned untouched with
// ErrBillingAlreadyFinalized.
//
// fixed_quote: the customer owes exactly the locked quote total.
// duration_based: labor is the elapsed minutes between the verified start
// and verified end, rounded up to the billing unit, at the hourly rate
// snapshotted when the job was booked; quoted materials carry over.
//
// A dispute flagged before finalize does not stop the computation; it only
// holds the provider payout until the dispute is resolved.
func (r *BillingReconciler) Finalize(j entities.Job, completedAt time.Time) (entities.BillingRecord, error) {
	if j.Billing != nil {
		return *j.Billing, ErrBillingAlreadyFinalized
	}
	if j.Quote == nil || !j.QuoteAccepted() {
		return entities.BillingRecord{}, ErrQuoteNotFound
	}

	rec := entities.BillingRecord{Mode: j.BillingMode, PayoutHeld: j.DisputeFlag}

	switch j.BillingMode {
	case entities.BillingModeDurationBased:
		if j.JobStartedAt == nil {
			return entities.BillingRecord{}, ErrMissingStartTimestamp
		}
		elapsed := completedAt.Sub(*j.JobStartedAt)
		rec.ActualDurationMinutes = int(math.Ceil(elapsed.Minutes()))
		if rec.ActualDurationMinutes < 0 {
			rec.ActualDurationMinutes = 0
		}
		rec.BilledMinutes = roundUpToUnit(rec.ActualDurationMinutes, r.billingUnitMinutes)
		rec.FinalLaborCost = round2(float64(rec.BilledMinutes) / 60.0 * j.HourlyRate)
		rec.FinalMaterialsCost = round2(j.Quote.Materials)
	default:
		rec.FinalLaborCost = round2(j.Quote.Labor)
		rec.FinalMaterialsCost = round2(j.Quote.Materials)
	}

	rec.Subtotal = round2(rec.FinalLaborCost + rec.FinalMaterialsCost)
	rec.FinalTotalCost = rec.Subtotal
	rec.PlatformFeeAmount = round2(rec.FinalTotalCost * r.platformFeeRate)
	rec.ProviderPayoutAmount = round2(rec.FinalTotalCost - rec.PlatformFeeAmount)
	return rec, nil
}

func roundUpToUnit(minutes, unit int) int {
	if minutes <= 0 {
		return 0
	}
	whole := minutes / unit
	if minutes%unit != 0 {
		whole++
	}
	return whole * unit
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
