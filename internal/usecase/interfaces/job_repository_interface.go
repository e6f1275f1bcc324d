package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"conserta_ja/internal/domain/entities"
)

// ErrConditionFailed is returned by the repository when a conditional write
// lost its precondition check (another writer got there first, or the stored
// state no longer matches). Callers re-read the job and classify.
var ErrConditionFailed = errors.New("conditional write precondition failed")

// IJobRepository abstracts DynamoDB persistence for the Job aggregate.
//
// Every mutating method is a single conditional write: the update applies
// only if the stored item still satisfies the method's precondition,
// otherwise ErrConditionFailed comes back and nothing was written. This is
// the only concurrency primitive the engine relies on.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Job, error)

	// UpdateStatus applies from -> to, conditional on status == from.
	UpdateStatus(ctx context.Context, id string, from, to entities.JobStatus) (entities.Job, error)

	// PutQuote writes an unlocked quote while the job is confirmed.
	// prevSubmittedAt versions the write: nil requires no quote present,
	// non-nil requires the stored quote to still carry that timestamp and
	// to be unlocked (re-submission after rejection).
	PutQuote(ctx context.Context, id string, q entities.Quote, prevSubmittedAt *time.Time) (entities.Job, error)

	// AcceptQuote sets accepted+locked+acceptedAt in one write, conditional
	// on the stored quote still being the one submitted at submittedAt and
	// still unlocked.
	AcceptQuote(ctx context.Context, id string, submittedAt, acceptedAt time.Time) (entities.Job, error)

	// ClearQuote removes a rejected quote under the same version guard.
	ClearQuote(ctx context.Context, id string, submittedAt time.Time) (entities.Job, error)

	// PutStartCode persists a start handshake while the job is confirmed
	// with an accepted quote. With replace=false the write requires no code
	// present; with replace=true it requires the stored hash to equal
	// priorHash, invalidating exactly the code the caller saw expire.
	PutStartCode(ctx context.Context, id string, code entities.AuthCode, replace bool, priorHash string) (entities.Job, error)

	// PutEndCode is the in_progress counterpart of PutStartCode.
	PutEndCode(ctx context.Context, id string, code entities.AuthCode, replace bool, priorHash string) (entities.Job, error)

	// ConsumeStartCode verifies and consumes the start code and performs
	// confirmed -> in_progress as one write, conditional on the stored hash
	// equalling hash and the code being unconsumed. Stamps jobStartedAt.
	ConsumeStartCode(ctx context.Context, id, hash string, startedAt time.Time) (entities.Job, error)

	// ConsumeEndCode verifies and consumes the end code, performs
	// in_progress -> awaiting_payment, stamps jobCompletedAt, and persists
	// the billing record, all in one write.
	ConsumeEndCode(ctx context.Context, id, hash string, completedAt time.Time, billing entities.BillingRecord) (entities.Job, error)

	// RecordPayment stores the approved provider payment and performs
	// awaiting_payment -> completed, conditional on the current status.
	RecordPayment(ctx context.Context, id, paymentID string, payload json.RawMessage, paidAt time.Time) (entities.Job, error)

	// SetDispute flags the job; conditional on the job not being completed.
	SetDispute(ctx context.Context, id, reason string) (entities.Job, error)

	// ResolveDispute clears the flag and lifts the payout hold.
	ResolveDispute(ctx context.Context, id string) (entities.Job, error)

	// ReleasePayout marks the provider payout released, conditional on a
	// completed job whose billing record is not held and not yet released.
	ReleasePayout(ctx context.Context, id string, releasedAt time.Time) (entities.Job, error)
}
