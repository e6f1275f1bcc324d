package entities

import (
	"encoding/json"
	"time"
)

// JobStatus represents the lifecycle of a booked job.
//
// Domain notes:
//   - The job record in DynamoDB is the single source of truth for status.
//   - Status only ever changes through the transition table below; every
//     writer applies a conditional update pinned on the current status.

type JobStatus string

const (
	JobStatusPending         JobStatus = "pending"
	JobStatusConfirmed       JobStatus = "confirmed"
	JobStatusInProgress      JobStatus = "in_progress"
	JobStatusAwaitingPayment JobStatus = "awaiting_payment"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusCancelled       JobStatus = "cancelled"
)

// BillingMode selects how the final amount is computed at job completion.
//
//   - fixed_quote: final total equals the locked quote total.
//   - duration_based: labor is billed from the elapsed time between the
//     verified start and verified end, using the hourly rate snapshotted
//     at booking time; quoted materials are carried over as-is.

type BillingMode string

const (
	BillingModeFixedQuote    BillingMode = "fixed_quote"
	BillingModeDurationBased BillingMode = "duration_based"
)

// Job is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (provider_id-index): provider_id
//
// JobStartedAt and JobCompletedAt are stamped server-side by the code
// handshake transitions and are never accepted from a client.

type Job struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProviderID string    `json:"provider_id"`
	Status     JobStatus `json:"status"`

	BillingMode BillingMode `json:"billing_mode"`
	// HourlyRate is the provider's rate snapshotted when the booking was
	// made. Zero for fixed_quote jobs.
	HourlyRate float64 `json:"hourly_rate,omitempty"`

	Quote     *Quote    `json:"quote,omitempty"`
	StartCode *AuthCode `json:"start_code,omitempty"`
	EndCode   *AuthCode `json:"end_code,omitempty"`

	ScheduledAt    time.Time  `json:"scheduled_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	JobStartedAt   *time.Time `json:"job_started_at,omitempty"`
	JobCompletedAt *time.Time `json:"job_completed_at,omitempty"`

	Billing *BillingRecord `json:"billing,omitempty"`

	DisputeFlag   bool   `json:"dispute_flag,omitempty"`
	DisputeReason string `json:"dispute_reason,omitempty"`

	// Payment provider linkage, populated once the payment collaborator
	// approves the charge. PaymentPayloadRaw keeps the original provider
	// response for traceability/audit.
	PaymentID         string          `json:"payment_id,omitempty"`
	PaymentPaidAt     *time.Time      `json:"payment_paid_at,omitempty"`
	PaymentPayloadRaw json.RawMessage `json:"payment_payload_raw,omitempty"`
}

// Terminal reports whether the job can never change status again.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// legalTransitions is the authoritative status transition table. Actor and
// gate preconditions (quote acceptance, code verification, billing presence)
// are enforced by the use cases on top of this table.
var legalTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:         {JobStatusConfirmed, JobStatusCancelled},
	JobStatusConfirmed:       {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress:      {JobStatusAwaitingPayment, JobStatusCancelled},
	JobStatusAwaitingPayment: {JobStatusCompleted},
}

// CanTransition reports whether from -> to appears in the transition table.
func CanTransition(from, to JobStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// QuoteAccepted reports whether the job carries a locked, accepted quote.
func (j Job) QuoteAccepted() bool {
	return j.Quote != nil && j.Quote.Accepted && j.Quote.Locked
}
