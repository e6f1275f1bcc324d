package request

import (
	"strings"
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase"
)

// CreateJobRequest is the booking payload. HourlyRate is required only when
// billing_mode is duration_based.
type CreateJobRequest struct {
	ProviderID  string    `json:"provider_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	BillingMode string    `json:"billing_mode" binding:"required"`
	HourlyRate  float64   `json:"hourly_rate"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		ProviderID:  strings.TrimSpace(r.ProviderID),
		ScheduledAt: r.ScheduledAt,
		BillingMode: entities.BillingMode(strings.TrimSpace(r.BillingMode)),
		HourlyRate:  r.HourlyRate,
	}
}

type DisputeRequest struct {
	Reason string `json:"reason" binding:"required"`
}
