package response

import (
	"time"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase"
)

type QuoteView struct {
	LaborCost     float64    `json:"labor_cost"`
	MaterialsCost float64    `json:"materials_cost"`
	TotalCost     float64    `json:"total_cost"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	Accepted      bool       `json:"accepted"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	Locked        bool       `json:"locked"`
}

// CodeView deliberately omits the stored hash. Clients only learn whether a
// code exists, when it expires and whether it has been used.
type CodeView struct {
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Consumed  bool       `json:"consumed"`
}

type BillingView struct {
	Mode                  string     `json:"mode"`
	ActualDurationMinutes int        `json:"actual_duration_minutes,omitempty"`
	BilledMinutes         int        `json:"billed_minutes,omitempty"`
	FinalLaborCost        float64    `json:"final_labor_cost"`
	FinalMaterialsCost    float64    `json:"final_materials_cost"`
	Subtotal              float64    `json:"subtotal"`
	PlatformFeeAmount     float64    `json:"platform_fee_amount"`
	FinalTotalCost        float64    `json:"final_total_cost"`
	ProviderPayoutAmount  float64    `json:"provider_payout_amount"`
	PayoutHeld            bool       `json:"payout_held"`
	PayoutReleasedAt      *time.Time `json:"payout_released_at,omitempty"`
}

type JobResponse struct {
	ID             string       `json:"id"`
	CustomerID     string       `json:"customer_id"`
	ProviderID     string       `json:"provider_id"`
	Status         string       `json:"status"`
	BillingMode    string       `json:"billing_mode"`
	HourlyRate     float64      `json:"hourly_rate,omitempty"`
	Quote          *QuoteView   `json:"quote,omitempty"`
	StartCode      *CodeView    `json:"start_code,omitempty"`
	EndCode        *CodeView    `json:"end_code,omitempty"`
	ScheduledAt    time.Time    `json:"scheduled_at"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	JobStartedAt   *time.Time   `json:"job_started_at,omitempty"`
	JobCompletedAt *time.Time   `json:"job_completed_at,omitempty"`
	Billing        *BillingView `json:"billing,omitempty"`
	DisputeFlag    bool         `json:"dispute_flag"`
	DisputeReason  string       `json:"dispute_reason,omitempty"`
	PaymentID      string       `json:"payment_id,omitempty"`
	PaymentPaidAt  *time.Time   `json:"payment_paid_at,omitempty"`
}

// IssuedCodeResponse is the one place the plaintext code crosses the wire,
// returned to its issuer at generation time.
type IssuedCodeResponse struct {
	Job       JobResponse `json:"job"`
	Code      string      `json:"code"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	out := JobResponse{
		ID:             j.ID,
		CustomerID:     j.CustomerID,
		ProviderID:     j.ProviderID,
		Status:         string(j.Status),
		BillingMode:    string(j.BillingMode),
		HourlyRate:     j.HourlyRate,
		ScheduledAt:    j.ScheduledAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		JobStartedAt:   j.JobStartedAt,
		JobCompletedAt: j.JobCompletedAt,
		DisputeFlag:    j.DisputeFlag,
		DisputeReason:  j.DisputeReason,
		PaymentID:      j.PaymentID,
		PaymentPaidAt:  j.PaymentPaidAt,
	}
	if j.Quote != nil {
		out.Quote = &QuoteView{
			LaborCost:     j.Quote.Labor,
			MaterialsCost: j.Quote.Materials,
			TotalCost:     j.Quote.Total,
			SubmittedAt:   j.Quote.SubmittedAt,
			Accepted:      j.Quote.Accepted,
			AcceptedAt:    j.Quote.AcceptedAt,
			Locked:        j.Quote.Locked,
		}
	}
	if j.StartCode != nil {
		out.StartCode = fromAuthCode(*j.StartCode)
	}
	if j.EndCode != nil {
		out.EndCode = fromAuthCode(*j.EndCode)
	}
	if j.Billing != nil {
		out.Billing = &BillingView{
			Mode:                  string(j.Billing.Mode),
			ActualDurationMinutes: j.Billing.ActualDurationMinutes,
			BilledMinutes:         j.Billing.BilledMinutes,
			FinalLaborCost:        j.Billing.FinalLaborCost,
			FinalMaterialsCost:    j.Billing.FinalMaterialsCost,
			Subtotal:              j.Billing.Subtotal,
			PlatformFeeAmount:     j.Billing.PlatformFeeAmount,
			FinalTotalCost:        j.Billing.FinalTotalCost,
			ProviderPayoutAmount:  j.Billing.ProviderPayoutAmount,
			PayoutHeld:            j.Billing.PayoutHeld,
			PayoutReleasedAt:      j.Billing.PayoutReleasedAt,
		}
	}
	return out
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

func FromIssuedCode(ic usecase.IssuedCode) IssuedCodeResponse {
	return IssuedCodeResponse{
		Job:       FromJob(ic.Job),
		Code:      ic.Plaintext,
		ExpiresAt: ic.ExpiresAt,
	}
}

func fromAuthCode(c entities.AuthCode) *CodeView {
	return &CodeView{
		IssuedAt:  c.IssuedAt,
		ExpiresAt: c.ExpiresAt,
		Consumed:  c.Consumed,
	}
}
