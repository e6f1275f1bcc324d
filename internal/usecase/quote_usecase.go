package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrQuoteLocked       = errors.New("quote locked")
	ErrInvalidQuoteValue = errors.New("invalid quote value")
)

// IQuoteUseCase exposes the quote negotiation protocol: the provider
// proposes a price after inspecting the job, the customer accepts or
// rejects. Acceptance locks the price irrevocably and is the gate that
// unlocks the start handshake.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, actor entities.Actor, jobID string, labor, materials float64) (entities.Job, error)
	RespondToQuote(ctx context.Context, actor entities.Actor, jobID string, accept bool) (entities.Job, error)
}

type QuoteUseCase struct {
	repo     interfaces.IJobRepository
	notifier interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IJobRepository, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, notifier: notifier}
}

// SubmitQuote writes a new unlocked quote. The total is recomputed from
// labor + materials; whatever total a client reports is ignored. After a
// rejection the provider may submit again, which overwrites the unlocked
// quote under a version guard on its submission timestamp.
func (u *QuoteUseCase) SubmitQuote(ctx context.Context, actor entities.Actor, jobID string, labor, materials float64) (entities.Job, error) {
	if labor < 0 || materials < 0 || labor+materials <= 0 {
		return entities.Job{}, ErrInvalidQuoteValue
	}
	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsProviderOf(j) {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}
	if j.Status != entities.JobStatusConfirmed {
		return entities.Job{}, stateErr(ErrIllegalStateTransition, j)
	}
	if j.Quote != nil && j.Quote.Locked {
		return entities.Job{}, stateErr(ErrQuoteLocked, j)
	}

	q := entities.NewQuote(labor, materials, time.Now().UTC())
	var prev *time.Time
	if j.Quote != nil {
		t := j.Quote.SubmittedAt
		prev = &t
	}

	updated, err := u.repo.PutQuote(ctx, jobID, q, prev)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, u.classifyQuoteConflict(ctx, jobID)
		}
		return entities.Job{}, err
	}
	log.Printf("[quote][usecase] submitted job_id=%s labor=%.2f materials=%.2f total=%.2f", jobID, q.Labor, q.Materials, q.Total)
	u.notifier.Notify(ctx, "quote.submitted", updated.ID)
	return updated, nil
}

// RespondToQuote accepts or rejects the pending quote. Accepting sets
// accepted and locked in one conditional write versioned on the quote's
// submission timestamp, so a response can never land on a quote the
// customer did not see. Rejecting clears the quote; the job stays confirmed
// and the provider may submit a new one.
func (u *QuoteUseCase) RespondToQuote(ctx context.Context, actor entities.Actor, jobID string, accept bool) (entities.Job, error) {
	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsCustomerOf(j) {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}
	if j.Quote == nil {
		return entities.Job{}, stateErr(ErrQuoteNotFound, j)
	}
	if j.Quote.Locked {
		return entities.Job{}, stateErr(ErrQuoteLocked, j)
	}

	var updated entities.Job
	if accept {
		updated, err = u.repo.AcceptQuote(ctx, jobID, j.Quote.SubmittedAt, time.Now().UTC())
	} else {
		updated, err = u.repo.ClearQuote(ctx, jobID, j.Quote.SubmittedAt)
	}
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, u.classifyQuoteConflict(ctx, jobID)
		}
		return entities.Job{}, err
	}

	if accept {
		log.Printf("[quote][usecase] accepted job_id=%s total=%.2f", jobID, updated.Quote.Total)
		u.notifier.Notify(ctx, "quote.accepted", updated.ID)
	} else {
		log.Printf("[quote][usecase] rejected job_id=%s", jobID)
		u.notifier.Notify(ctx, "quote.rejected", updated.ID)
	}
	return updated, nil
}

func (u *QuoteUseCase) classifyQuoteConflict(ctx context.Context, jobID string) error {
	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil || j.ID == "" {
		return ErrConcurrentModification
	}
	if j.Quote != nil && j.Quote.Locked {
		return stateErr(ErrQuoteLocked, j)
	}
	return stateErr(ErrConcurrentModification, j)
}
