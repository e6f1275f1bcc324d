package entities

import "time"

// Quote is the provider-proposed price embedded in the job record.
//
// Total is always recomputed server-side as Labor + Materials; a
// client-supplied total is never trusted. Locked flips true the instant the
// customer accepts and is never unset: afterwards the price is immutable and
// customer-initiated cancellation is forbidden.

type Quote struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Total     float64 `json:"total"`

	SubmittedAt time.Time  `json:"submitted_at"`
	Accepted    bool       `json:"accepted"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	Locked      bool       `json:"locked"`
}

// NewQuote builds a quote with the total recomputed from its parts.
func NewQuote(labor, materials float64, submittedAt time.Time) Quote {
	return Quote{
		Labor:       labor,
		Materials:   materials,
		Total:       labor + materials,
		SubmittedAt: submittedAt,
	}
}
