package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"conserta_ja/internal/domain/authcode"
	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/infrastructure/observability"
	"conserta_ja/internal/usecase/interfaces"
)

var (
	ErrNoCodeIssued        = errors.New("no code issued")
	ErrCodeExpired         = errors.New("code expired")
	ErrCodeAlreadyConsumed = errors.New("code already consumed")
	ErrInvalidCode         = errors.New("invalid code")
	ErrCodeAlreadyExists   = errors.New("code already exists")
	ErrQuoteNotAccepted    = errors.New("quote not accepted")
)

// DefaultCodeTTL bounds how long an issued code stays verifiable. Codes are
// short, so this window, enforced server-side at verification time, is the
// primary defense against guessing.
const DefaultCodeTTL = 15 * time.Minute

// IssuedCode carries a freshly generated code back to the issuing party.
// The plaintext exists only in this response; it is never persisted.
type IssuedCode struct {
	Job       entities.Job
	Plaintext string
	ExpiresAt *time.Time
}

// IHandshakeUseCase implements the two-party proof-of-presence handshake.
//
// The customer issues the start code and speaks it to the provider on site;
// the provider verifying it is what moves the job to in_progress. The end
// handshake is symmetric (provider issues, customer verifies) and moves the
// job to awaiting_payment, stamping the completion time and writing the
// billing record in the same atomic update.

type IHandshakeUseCase interface {
	IssueStartCode(ctx context.Context, actor entities.Actor, jobID string, regenerate bool) (IssuedCode, error)
	VerifyStartCode(ctx context.Context, actor entities.Actor, jobID, plaintext string) (entities.Job, error)
	IssueEndCode(ctx context.Context, actor entities.Actor, jobID string, regenerate bool) (IssuedCode, error)
	VerifyEndCode(ctx context.Context, actor entities.Actor, jobID, plaintext string) (entities.Job, error)
}

type HandshakeUseCase struct {
	repo       interfaces.IJobRepository
	notifier   interfaces.INotifier
	reconciler *BillingReconciler
	ttl        time.Duration
}

var _ IHandshakeUseCase = (*HandshakeUseCase)(nil)

func NewHandshakeUseCase(repo interfaces.IJobRepository, notifier interfaces.INotifier, reconciler *BillingReconciler, ttl time.Duration) *HandshakeUseCase {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}
	return &HandshakeUseCase{repo: repo, notifier: notifier, reconciler: reconciler, ttl: ttl}
}

// IssueStartCode is customer-only, legal while the job is confirmed with an
// accepted quote. While a live (unconsumed, unexpired) code exists the call
// fails with ErrCodeAlreadyExists; once the code has expired the caller may
// explicitly regenerate, which invalidates the prior hash.
func (u *HandshakeUseCase) IssueStartCode(ctx context.Context, actor entities.Actor, jobID string, regenerate bool) (IssuedCode, error) {
	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return IssuedCode{}, err
	}
	if !actor.IsCustomerOf(j) {
		return IssuedCode{}, stateErr(ErrActorForbidden, j)
	}
	if j.Status != entities.JobStatusConfirmed {
		return IssuedCode{}, stateErr(ErrIllegalStateTransition, j)
	}
	if !j.QuoteAccepted() {
		return IssuedCode{}, stateErr(ErrQuoteNotAccepted, j)
	}

	return u.issue(ctx, jobID, j.StartCode, regenerate, "start", u.repo.PutStartCode)
}

// IssueEndCode is provider-only, legal while the job is in progress.
func (u *HandshakeUseCase) IssueEndCode(ctx context.Context, actor entities.Actor, jobID string, regenerate bool) (IssuedCode, error) {
	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return IssuedCode{}, err
	}
	if !actor.IsProviderOf(j) {
		return IssuedCode{}, stateErr(ErrActorForbidden, j)
	}
	if j.Status != entities.JobStatusInProgress {
		return IssuedCode{}, stateErr(ErrIllegalStateTransition, j)
	}

	return u.issue(ctx, jobID, j.EndCode, regenerate, "end", u.repo.PutEndCode)
}

type putCodeFunc func(ctx context.Context, id string, code entities.AuthCode, replace bool, priorHash string) (entities.Job, error)

func (u *HandshakeUseCase) issue(ctx context.Context, jobID string, existing *entities.AuthCode, regenerate bool, side string, put putCodeFunc) (IssuedCode, error) {
	now := time.Now().UTC()

	replace := false
	priorHash := ""
	if existing != nil && !existing.Consumed {
		if !existing.Expired(now) {
			return IssuedCode{}, ErrCodeAlreadyExists
		}
		if !regenerate {
			// The stored code is dead, but replacing it must be an
			// explicit client decision, never an accidental re-issue.
			return IssuedCode{}, ErrCodeExpired
		}
		replace = true
		priorHash = existing.Hash
	}

	plaintext, err := authcode.Generate()
	if err != nil {
		return IssuedCode{}, err
	}
	expiresAt := now.Add(u.ttl)
	code := entities.AuthCode{
		Hash:      authcode.Hash(plaintext),
		IssuedAt:  now,
		ExpiresAt: &expiresAt,
	}

	updated, err := put(ctx, jobID, code, replace, priorHash)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return IssuedCode{}, u.classifyIssueConflict(ctx, jobID, side)
		}
		return IssuedCode{}, err
	}
	log.Printf("[handshake][usecase] %s code issued job_id=%s expires_at=%s replaced=%t", side, jobID, expiresAt.Format(time.RFC3339), replace)
	u.notifier.Notify(ctx, "code."+side+"_issued", updated.ID)
	return IssuedCode{Job: updated, Plaintext: plaintext, ExpiresAt: &expiresAt}, nil
}

// VerifyStartCode is provider-only. On success the code is consumed and the
// job moves confirmed -> in_progress in the same conditional write, so a
// verified-but-unconsumed code can never exist, even under racing requests.
func (u *HandshakeUseCase) VerifyStartCode(ctx context.Context, actor entities.Actor, jobID, plaintext string) (entities.Job, error) {
	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsProviderOf(j) {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}

	now := time.Now().UTC()
	if err := u.checkCode(j, j.StartCode, entities.JobStatusConfirmed, plaintext, now, "start"); err != nil {
		return entities.Job{}, err
	}

	updated, err := u.repo.ConsumeStartCode(ctx, jobID, j.StartCode.Hash, now)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			observability.RecordVerification("start", "conflict")
			return entities.Job{}, u.classifyVerifyConflict(ctx, jobID, entities.JobStatusConfirmed, func(job entities.Job) *entities.AuthCode { return job.StartCode })
		}
		return entities.Job{}, err
	}

	observability.RecordVerification("start", "ok")
	observability.RecordTransition(string(entities.JobStatusConfirmed), string(entities.JobStatusInProgress))
	log.Printf("[handshake][usecase] start verified job_id=%s started_at=%s", jobID, now.Format(time.RFC3339))
	u.notifier.Notify(ctx, "job.started", updated.ID)
	return updated, nil
}

// VerifyEndCode is customer-only. On success the code is consumed, the job
// moves in_progress -> awaiting_payment, jobCompletedAt is stamped
// server-side, and the reconciled billing record is persisted, all in one
// conditional write.
func (u *HandshakeUseCase) VerifyEndCode(ctx context.Context, actor entities.Actor, jobID, plaintext string) (entities.Job, error) {
	j, err := loadJob(ctx, u.repo, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !actor.IsCustomerOf(j) {
		return entities.Job{}, stateErr(ErrActorForbidden, j)
	}

	now := time.Now().UTC()
	if err := u.checkCode(j, j.EndCode, entities.JobStatusInProgress, plaintext, now, "end"); err != nil {
		return entities.Job{}, err
	}

	billing, err := u.reconciler.Finalize(j, now)
	if err != nil && !errors.Is(err, ErrBillingAlreadyFinalized) {
		return entities.Job{}, stateErr(err, j)
	}

	updated, err := u.repo.ConsumeEndCode(ctx, jobID, j.EndCode.Hash, now, billing)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			observability.RecordVerification("end", "conflict")
			return entities.Job{}, u.classifyVerifyConflict(ctx, jobID, entities.JobStatusInProgress, func(job entities.Job) *entities.AuthCode { return job.EndCode })
		}
		return entities.Job{}, err
	}

	observability.RecordVerification("end", "ok")
	observability.RecordTransition(string(entities.JobStatusInProgress), string(entities.JobStatusAwaitingPayment))
	observability.RecordBillingFinalized(string(billing.Mode), billing.PayoutHeld)
	log.Printf("[handshake][usecase] end verified job_id=%s total=%.2f payout=%.2f held=%t", jobID, billing.FinalTotalCost, billing.ProviderPayoutAmount, billing.PayoutHeld)
	u.notifier.Notify(ctx, "job.awaiting_payment", updated.ID)
	return updated, nil
}

// checkCode classifies a verification attempt against the loaded snapshot.
// The authoritative guard is the conditional consume write that follows;
// this pass exists to return precise errors and to compare the submitted
// plaintext in constant time.
func (u *HandshakeUseCase) checkCode(j entities.Job, code *entities.AuthCode, wantStatus entities.JobStatus, plaintext string, now time.Time, side string) error {
	if j.Status != wantStatus {
		observability.RecordVerification(side, "conflict")
		return stateErr(ErrIllegalStateTransition, j)
	}
	if code == nil {
		observability.RecordVerification(side, "missing")
		return stateErr(ErrNoCodeIssued, j)
	}
	if code.Consumed {
		observability.RecordVerification(side, "consumed")
		return stateErr(ErrCodeAlreadyConsumed, j)
	}
	if code.Expired(now) {
		observability.RecordVerification(side, "expired")
		return stateErr(ErrCodeExpired, j)
	}
	if !authcode.Matches(code.Hash, plaintext) {
		observability.RecordVerification(side, "invalid")
		return stateErr(ErrInvalidCode, j)
	}
	return nil
}

func (u *HandshakeUseCase) classifyIssueConflict(ctx context.Context, jobID, side string) error {
	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil || j.ID == "" {
		return ErrConcurrentModification
	}
	code := j.StartCode
	if side == "end" {
		code = j.EndCode
	}
	if code != nil && code.Live(time.Now().UTC()) {
		return ErrCodeAlreadyExists
	}
	return stateErr(ErrConcurrentModification, j)
}

func (u *HandshakeUseCase) classifyVerifyConflict(ctx context.Context, jobID string, wantStatus entities.JobStatus, pick func(entities.Job) *entities.AuthCode) error {
	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil || j.ID == "" {
		return ErrConcurrentModification
	}
	if code := pick(j); code != nil && code.Consumed {
		return stateErr(ErrCodeAlreadyConsumed, j)
	}
	if j.Status != wantStatus {
		return stateErr(ErrIllegalStateTransition, j)
	}
	return stateErr(ErrConcurrentModification, j)
}
