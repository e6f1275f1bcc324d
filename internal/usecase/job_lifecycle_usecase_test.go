package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase/interfaces"
	mock_interfaces "conserta_ja/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	customer = entities.Actor{Role: entities.ActorRoleCustomer, ID: "cus-1"}
	provider = entities.Actor{Role: entities.ActorRoleProvider, ID: "pro-1"}
	admin    = entities.Actor{Role: entities.ActorRoleAdmin, ID: "adm-1"}
)

func jobWith(status entities.JobStatus) entities.Job {
	return entities.Job{
		ID:          "job-1",
		CustomerID:  "cus-1",
		ProviderID:  "pro-1",
		Status:      status,
		BillingMode: entities.BillingModeFixedQuote,
	}
}

func TestJobLifecycleUseCase_CreateJob(t *testing.T) {
	validInput := CreateJobInput{
		ProviderID:  "pro-1",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		BillingMode: entities.BillingModeFixedQuote,
	}

	t.Run("provider cannot book", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		_, err := uc.CreateJob(context.Background(), provider, validInput)
		if !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("blank provider id", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		in := validInput
		in.ProviderID = "   "
		_, err := uc.CreateJob(context.Background(), customer, in)
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("unknown billing mode", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		in := validInput
		in.BillingMode = "subscription"
		_, err := uc.CreateJob(context.Background(), customer, in)
		if !errors.Is(err, ErrInvalidBillingMode) {
			t.Fatalf("expected ErrInvalidBillingMode, got %v", err)
		}
	})

	t.Run("duration based requires a positive rate", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		in := validInput
		in.BillingMode = entities.BillingModeDurationBased
		in.HourlyRate = 0
		_, err := uc.CreateJob(context.Background(), customer, in)
		if !errors.Is(err, ErrInvalidHourlyRate) {
			t.Fatalf("expected ErrInvalidHourlyRate, got %v", err)
		}
	})

	t.Run("fixed quote zeroes a stray rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		in := validInput
		in.HourlyRate = 250

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.HourlyRate != 0 {
					t.Fatalf("expected rate zeroed for fixed_quote, got %v", j.HourlyRate)
				}
				if j.Status != entities.JobStatusPending {
					t.Fatalf("expected pending status, got %s", j.Status)
				}
				if j.ID == "" {
					t.Fatal("expected a generated job id")
				}
				if j.CustomerID != customer.ID {
					t.Fatalf("expected customer id from actor, got %s", j.CustomerID)
				}
				return j, nil
			})
		notifier.EXPECT().Notify(gomock.Any(), "job.created", gomock.Any())

		created, err := uc.CreateJob(context.Background(), customer, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ProviderID != "pro-1" {
			t.Fatalf("unexpected provider id %s", created.ProviderID)
		}
	})

	t.Run("duration based snapshots the rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		in := validInput
		in.BillingMode = entities.BillingModeDurationBased
		in.HourlyRate = 180

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.HourlyRate != 180 {
					t.Fatalf("expected rate 180, got %v", j.HourlyRate)
				}
				return j, nil
			})
		notifier.EXPECT().Notify(gomock.Any(), "job.created", gomock.Any())

		if _, err := uc.CreateJob(context.Background(), customer, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobLifecycleUseCase_AcceptJob(t *testing.T) {
	t.Run("only the booked provider accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusPending), nil)

		other := entities.Actor{Role: entities.ActorRoleProvider, ID: "pro-2"}
		_, err := uc.AcceptJob(context.Background(), other, "job-1")
		if !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("already confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusConfirmed), nil)

		_, err := uc.AcceptJob(context.Background(), provider, "job-1")
		if !errors.Is(err, ErrIllegalStateTransition) {
			t.Fatalf("expected ErrIllegalStateTransition, got %v", err)
		}
		if got, ok := ActualStatusOf(err); !ok || got != entities.JobStatusConfirmed {
			t.Fatalf("expected actual status confirmed, got %s", got)
		}
	})

	t.Run("lost race surfaces as concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusPending), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusPending, entities.JobStatusConfirmed).
			Return(entities.Job{}, interfaces.ErrConditionFailed)
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusCancelled), nil)

		_, err := uc.AcceptJob(context.Background(), provider, "job-1")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
		if got, ok := ActualStatusOf(err); !ok || got != entities.JobStatusCancelled {
			t.Fatalf("expected actual status cancelled, got %s", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusPending), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusPending, entities.JobStatusConfirmed).
			Return(jobWith(entities.JobStatusConfirmed), nil)
		notifier.EXPECT().Notify(gomock.Any(), "job.confirmed", "job-1")

		updated, err := uc.AcceptJob(context.Background(), provider, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.JobStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", updated.Status)
		}
	})
}

func TestJobLifecycleUseCase_CancelJob(t *testing.T) {
	cancelOK := func(t *testing.T, actor entities.Actor, j entities.Job) {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), j.ID, j.Status, entities.JobStatusCancelled).
			Return(jobWith(entities.JobStatusCancelled), nil)
		notifier.EXPECT().Notify(gomock.Any(), "job.cancelled", "job-1")

		if _, err := uc.CancelJob(context.Background(), actor, j.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cancelFails := func(t *testing.T, actor entities.Actor, j entities.Job, want error) {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), j.ID).Return(j, nil)

		_, err := uc.CancelJob(context.Background(), actor, j.ID)
		if !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}

	t.Run("pending cancellable by either party", func(t *testing.T) {
		cancelOK(t, customer, jobWith(entities.JobStatusPending))
		cancelOK(t, provider, jobWith(entities.JobStatusPending))
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		stranger := entities.Actor{Role: entities.ActorRoleCustomer, ID: "cus-9"}
		cancelFails(t, stranger, jobWith(entities.JobStatusPending), ErrActorForbidden)
	})

	t.Run("confirmed before acceptance customer may still cancel", func(t *testing.T) {
		j := jobWith(entities.JobStatusConfirmed)
		q := entities.NewQuote(100, 0, time.Now().UTC())
		j.Quote = &q
		cancelOK(t, customer, j)
	})

	t.Run("accepted quote locks the customer in", func(t *testing.T) {
		j := jobWith(entities.JobStatusConfirmed)
		j.Quote = acceptedQuote(100, 0, time.Now().UTC())
		cancelFails(t, customer, j, ErrCancellationForbidden)
	})

	t.Run("provider may cancel after acceptance", func(t *testing.T) {
		j := jobWith(entities.JobStatusConfirmed)
		j.Quote = acceptedQuote(100, 0, time.Now().UTC())
		cancelOK(t, provider, j)
	})

	t.Run("in progress customer cannot cancel", func(t *testing.T) {
		cancelFails(t, customer, jobWith(entities.JobStatusInProgress), ErrCancellationForbidden)
	})

	t.Run("in progress provider can abort", func(t *testing.T) {
		cancelOK(t, provider, jobWith(entities.JobStatusInProgress))
	})

	t.Run("terminal states are immutable", func(t *testing.T) {
		cancelFails(t, provider, jobWith(entities.JobStatusCompleted), ErrIllegalStateTransition)
		cancelFails(t, customer, jobWith(entities.JobStatusCancelled), ErrIllegalStateTransition)
		cancelFails(t, admin, jobWith(entities.JobStatusAwaitingPayment), ErrIllegalStateTransition)
	})
}

func TestJobLifecycleUseCase_Reads(t *testing.T) {
	t.Run("get hides jobs from non-parties", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusPending), nil)

		stranger := entities.Actor{Role: entities.ActorRoleProvider, ID: "pro-9"}
		_, err := uc.GetJob(context.Background(), stranger, "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("get works for admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusPending), nil)

		j, err := uc.GetJob(context.Background(), admin, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.ID != "job-1" {
			t.Fatalf("unexpected job %s", j.ID)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		_, err := uc.GetJob(context.Background(), customer, "  ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("missing job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-x").Return(entities.Job{}, nil)

		_, err := uc.GetJob(context.Background(), customer, "job-x")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("list routes by role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().ListByCustomerID(gomock.Any(), "cus-1").Return([]entities.Job{jobWith(entities.JobStatusPending)}, nil)
		jobs, err := uc.ListJobs(context.Background(), customer)
		if err != nil || len(jobs) != 1 {
			t.Fatalf("expected one job for the customer, got %d err=%v", len(jobs), err)
		}

		repo.EXPECT().ListByProviderID(gomock.Any(), "pro-1").Return(nil, nil)
		if _, err := uc.ListJobs(context.Background(), provider); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := uc.ListJobs(context.Background(), admin); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound for admin list, got %v", err)
		}
	})
}

func TestJobLifecycleUseCase_Disputes(t *testing.T) {
	t.Run("only admin flags", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		_, err := uc.FlagDispute(context.Background(), customer, "job-1", "damage reported")
		if !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("blank reason", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		_, err := uc.FlagDispute(context.Background(), admin, "job-1", "   ")
		if !errors.Is(err, ErrInvalidDisputeReason) {
			t.Fatalf("expected ErrInvalidDisputeReason, got %v", err)
		}
	})

	t.Run("terminal job cannot be disputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusCancelled), nil)

		_, err := uc.FlagDispute(context.Background(), admin, "job-1", "damage reported")
		if !errors.Is(err, ErrIllegalStateTransition) {
			t.Fatalf("expected ErrIllegalStateTransition, got %v", err)
		}
	})

	t.Run("flag success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		flagged := jobWith(entities.JobStatusInProgress)
		flagged.DisputeFlag = true
		flagged.DisputeReason = "damage reported"

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusInProgress), nil)
		repo.EXPECT().SetDispute(gomock.Any(), "job-1", "damage reported").Return(flagged, nil)
		notifier.EXPECT().Notify(gomock.Any(), "dispute.flagged", "job-1")

		updated, err := uc.FlagDispute(context.Background(), admin, "job-1", "  damage reported  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.DisputeFlag {
			t.Fatal("expected dispute flag set")
		}
	})

	t.Run("resolve without a dispute is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusInProgress), nil)

		j, err := uc.ResolveDispute(context.Background(), admin, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.DisputeFlag {
			t.Fatal("expected no dispute flag")
		}
	})

	t.Run("resolve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		disputed := jobWith(entities.JobStatusCompleted)
		disputed.DisputeFlag = true
		disputed.DisputeReason = "damage reported"

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(disputed, nil)
		repo.EXPECT().ResolveDispute(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusCompleted), nil)
		notifier.EXPECT().Notify(gomock.Any(), "dispute.resolved", "job-1")

		updated, err := uc.ResolveDispute(context.Background(), admin, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.DisputeFlag {
			t.Fatal("expected the flag cleared")
		}
	})
}

func TestJobLifecycleUseCase_ReleasePayout(t *testing.T) {
	billedJob := func(held bool, releasedAt *time.Time) entities.Job {
		j := jobWith(entities.JobStatusCompleted)
		j.Billing = &entities.BillingRecord{
			Mode:                 entities.BillingModeFixedQuote,
			FinalTotalCost:       1000,
			PlatformFeeAmount:    150,
			ProviderPayoutAmount: 850,
			PayoutHeld:           held,
			PayoutReleasedAt:     releasedAt,
		}
		return j
	}

	t.Run("only admin releases", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil)
		_, err := uc.ReleasePayout(context.Background(), provider, "job-1")
		if !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("must be completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusAwaitingPayment), nil)

		_, err := uc.ReleasePayout(context.Background(), admin, "job-1")
		if !errors.Is(err, ErrIllegalStateTransition) {
			t.Fatalf("expected ErrIllegalStateTransition, got %v", err)
		}
	})

	t.Run("no billing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWith(entities.JobStatusCompleted), nil)

		_, err := uc.ReleasePayout(context.Background(), admin, "job-1")
		if !errors.Is(err, ErrBillingNotFound) {
			t.Fatalf("expected ErrBillingNotFound, got %v", err)
		}
	})

	t.Run("held payout stays blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billedJob(true, nil), nil)

		_, err := uc.ReleasePayout(context.Background(), admin, "job-1")
		if !errors.Is(err, ErrPayoutHeld) {
			t.Fatalf("expected ErrPayoutHeld, got %v", err)
		}
	})

	t.Run("open dispute blocks even without a hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		j := billedJob(false, nil)
		j.DisputeFlag = true
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)

		_, err := uc.ReleasePayout(context.Background(), admin, "job-1")
		if !errors.Is(err, ErrPayoutHeld) {
			t.Fatalf("expected ErrPayoutHeld, got %v", err)
		}
	})

	t.Run("already released is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil)

		released := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billedJob(false, &released), nil)

		j, err := uc.ReleasePayout(context.Background(), admin, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Billing.PayoutReleasedAt == nil {
			t.Fatal("expected the existing release timestamp back")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewJobLifecycleUseCase(repo, notifier)

		released := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(billedJob(false, nil), nil)
		repo.EXPECT().ReleasePayout(gomock.Any(), "job-1", gomock.Any()).Return(billedJob(false, &released), nil)
		notifier.EXPECT().Notify(gomock.Any(), "payout.released", "job-1")

		j, err := uc.ReleasePayout(context.Background(), admin, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Billing.PayoutReleasedAt == nil {
			t.Fatal("expected release timestamp set")
		}
	})
}

// TestJobLifecycleUseCase_RandomizedTransitionSafety throws random
// (status, actor, action) combinations at the lifecycle operations and checks
// that every status write the usecase commits stays inside the transition
// table, and that a customer never cancels past an accepted quote.
func TestJobLifecycleUseCase_RandomizedTransitionSafety(t *testing.T) {
	statuses := []entities.JobStatus{
		entities.JobStatusPending,
		entities.JobStatusConfirmed,
		entities.JobStatusInProgress,
		entities.JobStatusAwaitingPayment,
		entities.JobStatusCompleted,
		entities.JobStatusCancelled,
	}
	actors := []entities.Actor{
		customer,
		provider,
		admin,
		{Role: entities.ActorRoleCustomer, ID: "cus-other"},
		{Role: entities.ActorRoleProvider, ID: "pro-other"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	uc := NewJobLifecycleUseCase(repo, notifier)

	var current entities.Job
	repo.EXPECT().GetByID(gomock.Any(), "job-1").DoAndReturn(func(_ context.Context, _ string) (entities.Job, error) {
		return current, nil
	}).AnyTimes()
	repo.EXPECT().UpdateStatus(gomock.Any(), "job-1", gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, from, to entities.JobStatus) (entities.Job, error) {
		if from != current.Status {
			t.Fatalf("committed from %s but the job is %s", from, current.Status)
		}
		if !entities.CanTransition(from, to) {
			t.Fatalf("committed a transition outside the table: %s -> %s", from, to)
		}
		j := current
		j.Status = to
		return j, nil
	}).AnyTimes()

	rng := rand.New(rand.NewSource(20260831))
	for i := 0; i < 500; i++ {
		status := statuses[rng.Intn(len(statuses))]
		actor := actors[rng.Intn(len(actors))]
		current = jobWith(status)
		if rng.Intn(2) == 0 {
			acceptedAt := time.Now().UTC()
			current.Quote = &entities.Quote{
				Labor:      100,
				Total:      100,
				Accepted:   true,
				AcceptedAt: &acceptedAt,
				Locked:     true,
			}
		}

		if rng.Intn(2) == 0 {
			_, err := uc.AcceptJob(context.Background(), actor, "job-1")
			if err == nil && (actor.ID != current.ProviderID || status != entities.JobStatusPending) {
				t.Fatalf("accept succeeded for actor=%s/%s on status=%s", actor.Role, actor.ID, status)
			}
		} else {
			_, err := uc.CancelJob(context.Background(), actor, "job-1")
			if err == nil {
				isParty := actor.ID == current.CustomerID || actor.ID == current.ProviderID || actor.Role == entities.ActorRoleAdmin
				if !isParty {
					t.Fatalf("cancel succeeded for a stranger actor=%s/%s", actor.Role, actor.ID)
				}
				if actor.ID == current.CustomerID && current.QuoteAccepted() && status != entities.JobStatusPending {
					t.Fatalf("customer cancelled past an accepted quote at status=%s", status)
				}
			}
		}
	}
}
