package entities

import "time"

// BillingRecord is the ledger entry computed exactly once when a job reaches
// awaiting_payment. It is write-once: a second reconciliation attempt returns
// the stored record untouched.
//
// FinalTotalCost is what the customer owes; ProviderPayoutAmount is
// FinalTotalCost minus the platform fee. PayoutHeld blocks payout release
// while a dispute stands.

type BillingRecord struct {
	Mode BillingMode `json:"mode"`

	// ActualDurationMinutes and BilledMinutes are populated for
	// duration_based jobs only. BilledMinutes is the actual duration
	// rounded up to the configured billing unit.
	ActualDurationMinutes int `json:"actual_duration_minutes,omitempty"`
	BilledMinutes         int `json:"billed_minutes,omitempty"`

	FinalLaborCost       float64 `json:"final_labor_cost"`
	FinalMaterialsCost   float64 `json:"final_materials_cost"`
	Subtotal             float64 `json:"subtotal"`
	PlatformFeeAmount    float64 `json:"platform_fee_amount"`
	FinalTotalCost       float64 `json:"final_total_cost"`
	ProviderPayoutAmount float64 `json:"provider_payout_amount"`

	PayoutHeld       bool       `json:"payout_held"`
	PayoutReleasedAt *time.Time `json:"payout_released_at,omitempty"`
}
