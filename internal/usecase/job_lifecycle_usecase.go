package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/infrastructure/observability"
	"conserta_ja/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound            = errors.New("job not found")
	ErrInvalidJobID           = errors.New("invalid job id")
	ErrInvalidProviderID      = errors.New("invalid provider id")
	ErrInvalidBillingMode     = errors.New("invalid billing mode")
	ErrInvalidHourlyRate      = errors.New("invalid hourly rate")
	ErrIllegalStateTransition = errors.New("illegal state transition")
	ErrActorForbidden         = errors.New("actor not allowed to perform this operation")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrCancellationForbidden  = errors.New("cancellation forbidden")
	ErrBillingNotFound        = errors.New("billing record not found")
	ErrPayoutHeld             = errors.New("payout held by dispute")
	ErrInvalidDisputeReason   = errors.New("invalid dispute reason")
)

// CreateJobInput is the domain command for booking a job.
//
// HourlyRate is the snapshot taken at booking time and is required for
// duration_based jobs; it is ignored for fixed_quote jobs.
type CreateJobInput struct {
	ProviderID  string
	ScheduledAt time.Time
	BillingMode entities.BillingMode
	HourlyRate  float64
}

// IJobLifecycleUseCase exposes the status lifecycle operations that are not
// driven by the code handshake: booking, provider acceptance, cancellation,
// the dispute gate and payout release, plus the read paths clients use to
// resynchronize after any rejected write.

type IJobLifecycleUseCase interface {
	CreateJob(ctx context.Context, actor entities.Actor, in CreateJobInput) (entities.Job, error)
	AcceptJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error)
	CancelJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error)
	GetJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error)
	ListJobs(ctx context.Context, actor entities.Actor) ([]entities.Job, error)
	FlagDispute(ctx context.Context, actor entities.Actor, jobID, reason string) (entities.Job, error)
	ResolveDispute(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error)
	ReleasePayout(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error)
}

type JobLifecycleUseCase struct {
	repo     interfaces.IJobRepository
	notifier interfaces.INotifier
}

var _ IJobLifecycleUseCase = (*JobLifecycleUseCase)(nil)

func NewJobLifecycleUseCase(repo interfaces.IJobRepository, notifier interfaces.INotifier) *JobLifecycleUseCase {
	return &JobLifecycleUseCase{repo: repo, notifier: notifier}
}

func (u *JobLifecycleUseCase) CreateJob(ctx context.Context, actor entities.Actor, in CreateJobInput) (entities.Job, error) {
	if actor.Role != entities.ActorRoleCustomer {
		return entities.Job{}, ErrActorForbidden
	}
	providerID := strings.TrimSpace(in.ProviderID)
	if providerID == "" {
		return entities.Job{}, ErrInvalidProviderID
	}

	switch in.BillingMode {
	case entities.BillingModeFixedQuote:
		in.HourlyRate = 0
	case entities.BillingModeDurationBased:
		if in.HourlyRate <= 0 {
			return entities.Job{}, ErrInvalidHourlyRate
		}
	default:
		return entities.Job{}, ErrInvalidBillingMode
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:          uuid.NewString(),
		CustomerID:  actor.ID,
		ProviderID:  providerID,
		Status:      entities.JobStatusPending,
		BillingMode: in.BillingMode,
		HourlyRate:  in.HourlyRate,
		ScheduledAt: in.ScheduledAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created job_id=%s customer_id=%s provider_id=%s mode=%s", created.ID, created.CustomerID, created.ProviderID, created.BillingMode)
	u.notifier.Notify(ctx, "job.created", created.ID)
	return created, nil
}

func (u *JobLifecycleUseCase) AcceptJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error) {
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsProviderOf(j) {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}
	if j.Status != entities.JobStatusPending {
		return entities.Job{}, stateErr(ErrIllegalStateTransition, j)
	}

	updated, err := u.transition(ctx, jobID, entities.JobStatusPending, entities.JobStatusConfirmed)
	if err != nil {
		return entities.Job{}, err
	}
	u.notifier.Notify(ctx, "job.confirmed", updated.ID)
	return updated, nil
}

func (u *JobLifecycleUseCase) CancelJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error) {
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	isCustomer := actor.IsCustomerOf(j)
	isProvider := actor.IsProviderOf(j)
	if !isCustomer && !isProvider && !actor.IsAdmin() {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}

	switch j.Status {
	case entities.JobStatusPending:
		// Either party may withdraw before acceptance.
	case entities.JobStatusConfirmed:
		if isCustomer && j.QuoteAccepted() {
			return entities.Job{}, stateErr(ErrCancellationForbidden, j)
		}
	case entities.JobStatusInProgress:
		// Quote is necessarily accepted at this stage: provider only.
		if isCustomer {
			return entities.Job{}, stateErr(ErrCancellationForbidden, j)
		}
	default:
		return entities.Job{}, stateErr(ErrIllegalStateTransition, j)
	}

	updated, err := u.transition(ctx, jobID, j.Status, entities.JobStatusCancelled)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] cancelled job_id=%s by=%s from=%s", updated.ID, actor.Role, j.Status)
	u.notifier.Notify(ctx, "job.cancelled", updated.ID)
	return updated, nil
}

func (u *JobLifecycleUseCase) GetJob(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error) {
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsCustomerOf(j) && !actor.IsProviderOf(j) && !actor.IsAdmin() {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobLifecycleUseCase) ListJobs(ctx context.Context, actor entities.Actor) ([]entities.Job, error) {
	switch actor.Role {
	case entities.ActorRoleCustomer:
		return u.repo.ListByCustomerID(ctx, actor.ID)
	case entities.ActorRoleProvider:
		return u.repo.ListByProviderID(ctx, actor.ID)
	default:
		return nil, ErrJobNotFound
	}
}

func (u *JobLifecycleUseCase) FlagDispute(ctx context.Context, actor entities.Actor, jobID, reason string) (entities.Job, error) {
	if !actor.IsAdmin() {
		return entities.Job{}, ErrActorForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Job{}, ErrInvalidDisputeReason
	}
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status.Terminal() {
		return entities.Job{}, stateErr(ErrIllegalStateTransition, j)
	}

	updated, err := u.repo.SetDispute(ctx, jobID, reason)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, u.conflict(ctx, jobID)
		}
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] dispute flagged job_id=%s", updated.ID)
	u.notifier.Notify(ctx, "dispute.flagged", updated.ID)
	return updated, nil
}

func (u *JobLifecycleUseCase) ResolveDispute(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error) {
	if !actor.IsAdmin() {
		return entities.Job{}, ErrActorForbidden
	}
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !j.DisputeFlag {
		// Nothing to resolve; report state as-is.
		return j, nil
	}

	updated, err := u.repo.ResolveDispute(ctx, jobID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, u.conflict(ctx, jobID)
		}
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] dispute resolved job_id=%s", updated.ID)
	u.notifier.Notify(ctx, "dispute.resolved", updated.ID)
	return updated, nil
}

// ReleasePayout marks the provider payout as released. A held payout is the
// dispute gate from the billing design: it stays blocked until the dispute
// is resolved. Releasing an already-released payout is a no-op.
func (u *JobLifecycleUseCase) ReleasePayout(ctx context.Context, actor entities.Actor, jobID string) (entities.Job, error) {
	if !actor.IsAdmin() {
		return entities.Job{}, ErrActorForbidden
	}
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.Status != entities.JobStatusCompleted {
		return entities.Job{}, stateErr(ErrIllegalStateTransition, j)
	}
	if j.Billing == nil {
		return entities.Job{}, stateErr(ErrBillingNotFound, j)
	}
	if j.DisputeFlag || j.Billing.PayoutHeld {
		return entities.Job{}, stateErr(ErrPayoutHeld, j)
	}
	if j.Billing.PayoutReleasedAt != nil {
		return j, nil
	}

	updated, err := u.repo.ReleasePayout(ctx, jobID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, u.conflict(ctx, jobID)
		}
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] payout released job_id=%s amount=%.2f", updated.ID, updated.Billing.ProviderPayoutAmount)
	u.notifier.Notify(ctx, "payout.released", updated.ID)
	return updated, nil
}

func (u *JobLifecycleUseCase) loadJob(ctx context.Context, jobID string) (entities.Job, error) {
	return loadJob(ctx, u.repo, jobID)
}

func (u *JobLifecycleUseCase) transition(ctx context.Context, jobID string, from, to entities.JobStatus) (entities.Job, error) {
	updated, err := u.repo.UpdateStatus(ctx, jobID, from, to)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, conflictErr(ctx, u.repo, jobID)
		}
		return entities.Job{}, err
	}
	observability.RecordTransition(string(from), string(to))
	return updated, nil
}

func (u *JobLifecycleUseCase) conflict(ctx context.Context, jobID string) error {
	return conflictErr(ctx, u.repo, jobID)
}
