package usecase

import (
	"errors"
	"testing"
	"time"

	"conserta_ja/internal/domain/entities"
)

func acceptedQuote(labor, materials float64, at time.Time) *entities.Quote {
	q := entities.NewQuote(labor, materials, at)
	q.Accepted = true
	q.AcceptedAt = &at
	q.Locked = true
	return &q
}

func TestBillingReconciler_FixedQuote(t *testing.T) {
	r := NewBillingReconciler(0.15, 15)
	now := time.Now().UTC()

	j := entities.Job{
		ID:          "job-1",
		BillingMode: entities.BillingModeFixedQuote,
		Status:      entities.JobStatusInProgress,
		Quote:       acceptedQuote(5000, 750, now.Add(-time.Hour)),
	}

	rec, err := r.Finalize(j, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Mode != entities.BillingModeFixedQuote {
		t.Fatalf("expected fixed_quote mode, got %s", rec.Mode)
	}
	if rec.FinalLaborCost != 5000 || rec.FinalMaterialsCost != 750 {
		t.Fatalf("unexpected cost split: labor=%v materials=%v", rec.FinalLaborCost, rec.FinalMaterialsCost)
	}
	if rec.Subtotal != 5750 || rec.FinalTotalCost != 5750 {
		t.Fatalf("expected total 5750, got subtotal=%v total=%v", rec.Subtotal, rec.FinalTotalCost)
	}
	if rec.PlatformFeeAmount != 862.5 {
		t.Fatalf("expected platform fee 862.50, got %v", rec.PlatformFeeAmount)
	}
	if rec.ProviderPayoutAmount != 4887.5 {
		t.Fatalf("expected payout 4887.50, got %v", rec.ProviderPayoutAmount)
	}
	if rec.ActualDurationMinutes != 0 || rec.BilledMinutes != 0 {
		t.Fatal("fixed_quote billing must not carry duration fields")
	}
	if rec.PayoutHeld {
		t.Fatal("payout must not be held without a dispute")
	}
}

func TestBillingReconciler_DurationBased(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rounds up to the billing unit", func(t *testing.T) {
		r := NewBillingReconciler(0.15, 15)
		started := now.Add(-95 * time.Minute)
		j := entities.Job{
			ID:           "job-1",
			BillingMode:  entities.BillingModeDurationBased,
			Status:       entities.JobStatusInProgress,
			HourlyRate:   1000,
			JobStartedAt: &started,
			Quote:        acceptedQuote(0, 200, now.Add(-2*time.Hour)),
		}

		rec, err := r.Finalize(j, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ActualDurationMinutes != 95 {
			t.Fatalf("expected 95 actual minutes, got %d", rec.ActualDurationMinutes)
		}
		if rec.BilledMinutes != 105 {
			t.Fatalf("expected 105 billed minutes, got %d", rec.BilledMinutes)
		}
		if rec.FinalLaborCost != 1750 {
			t.Fatalf("expected labor 1750, got %v", rec.FinalLaborCost)
		}
		if rec.FinalMaterialsCost != 200 {
			t.Fatalf("expected materials 200, got %v", rec.FinalMaterialsCost)
		}
		if rec.FinalTotalCost != 1950 {
			t.Fatalf("expected total 1950, got %v", rec.FinalTotalCost)
		}
	})

	t.Run("ten minute unit", func(t *testing.T) {
		r := NewBillingReconciler(0.15, 10)
		started := now.Add(-95 * time.Minute)
		j := entities.Job{
			ID:           "job-1",
			BillingMode:  entities.BillingModeDurationBased,
			Status:       entities.JobStatusInProgress,
			HourlyRate:   1000,
			JobStartedAt: &started,
			Quote:        acceptedQuote(0, 0, now.Add(-2*time.Hour)),
		}

		rec, err := r.Finalize(j, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.BilledMinutes != 100 {
			t.Fatalf("expected 100 billed minutes, got %d", rec.BilledMinutes)
		}
		if rec.FinalLaborCost != 1666.67 {
			t.Fatalf("expected labor 1666.67, got %v", rec.FinalLaborCost)
		}
	})

	t.Run("exact multiple is not rounded", func(t *testing.T) {
		r := NewBillingReconciler(0.15, 15)
		started := now.Add(-90 * time.Minute)
		j := entities.Job{
			ID:           "job-1",
			BillingMode:  entities.BillingModeDurationBased,
			Status:       entities.JobStatusInProgress,
			HourlyRate:   100,
			JobStartedAt: &started,
			Quote:        acceptedQuote(0, 0, now.Add(-2*time.Hour)),
		}

		rec, err := r.Finalize(j, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.BilledMinutes != 90 {
			t.Fatalf("expected 90 billed minutes, got %d", rec.BilledMinutes)
		}
		if rec.FinalLaborCost != 150 {
			t.Fatalf("expected labor 150, got %v", rec.FinalLaborCost)
		}
	})

	t.Run("missing start timestamp", func(t *testing.T) {
		r := NewBillingReconciler(0.15, 15)
		j := entities.Job{
			ID:          "job-1",
			BillingMode: entities.BillingModeDurationBased,
			Status:      entities.JobStatusInProgress,
			HourlyRate:  100,
			Quote:       acceptedQuote(0, 0, now),
		}

		_, err := r.Finalize(j, now)
		if !errors.Is(err, ErrMissingStartTimestamp) {
			t.Fatalf("expected ErrMissingStartTimestamp, got %v", err)
		}
	})

	t.Run("clock skew clamps to zero", func(t *testing.T) {
		r := NewBillingReconciler(0.15, 15)
		started := now.Add(5 * time.Minute)
		j := entities.Job{
			ID:           "job-1",
			BillingMode:  entities.BillingModeDurationBased,
			Status:       entities.JobStatusInProgress,
			HourlyRate:   100,
			JobStartedAt: &started,
			Quote:        acceptedQuote(0, 0, now),
		}

		rec, err := r.Finalize(j, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ActualDurationMinutes != 0 || rec.BilledMinutes != 0 {
			t.Fatalf("expected zero duration, got actual=%d billed=%d", rec.ActualDurationMinutes, rec.BilledMinutes)
		}
		if rec.FinalLaborCost != 0 {
			t.Fatalf("expected zero labor, got %v", rec.FinalLaborCost)
		}
	})
}

func TestBillingReconciler_Gates(t *testing.T) {
	r := NewBillingReconciler(0.15, 15)
	now := time.Now().UTC()

	t.Run("already finalized returns stored record", func(t *testing.T) {
		stored := entities.BillingRecord{Mode: entities.BillingModeFixedQuote, FinalTotalCost: 500}
		j := entities.Job{
			ID:          "job-1",
			BillingMode: entities.BillingModeFixedQuote,
			Billing:     &stored,
			Quote:       acceptedQuote(300, 200, now),
		}

		rec, err := r.Finalize(j, now)
		if !errors.Is(err, ErrBillingAlreadyFinalized) {
			t.Fatalf("expected ErrBillingAlreadyFinalized, got %v", err)
		}
		if rec.FinalTotalCost != 500 {
			t.Fatalf("expected the stored record back, got total %v", rec.FinalTotalCost)
		}
	})

	t.Run("no accepted quote", func(t *testing.T) {
		q := entities.NewQuote(300, 200, now)
		j := entities.Job{ID: "job-1", BillingMode: entities.BillingModeFixedQuote, Quote: &q}

		_, err := r.Finalize(j, now)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("dispute holds the payout", func(t *testing.T) {
		j := entities.Job{
			ID:          "job-1",
			BillingMode: entities.BillingModeFixedQuote,
			DisputeFlag: true,
			Quote:       acceptedQuote(300, 200, now),
		}

		rec, err := r.Finalize(j, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.PayoutHeld {
			t.Fatal("expected payout to be held while disputed")
		}
	})
}

func TestNewBillingReconciler_Defaults(t *testing.T) {
	r := NewBillingReconciler(0, 0)
	if r.platformFeeRate != DefaultPlatformFeeRate {
		t.Fatalf("expected default fee rate, got %v", r.platformFeeRate)
	}
	if r.billingUnitMinutes != DefaultBillingUnitMinutes {
		t.Fatalf("expected default billing unit, got %d", r.billingUnitMinutes)
	}

	r = NewBillingReconciler(1.5, -3)
	if r.platformFeeRate != DefaultPlatformFeeRate || r.billingUnitMinutes != DefaultBillingUnitMinutes {
		t.Fatal("out of range configuration must fall back to defaults")
	}
}
