package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentCharge is what the engine hands the gateway: the reconciled amount
// owed for a job plus the customer's raw payment instrument payload. JobID
// and Amount always win over whatever the payload carries, so a client can
// never charge an amount other than the stored billing total.
type PaymentCharge struct {
	JobID       string
	Amount      float64
	Description string
	Payload     json.RawMessage
}

// IPaymentGateway abstracts the external payment collaborator (Mercado Pago).
//
// The engine never moves money itself: it builds a PaymentCharge and persists
// the provider response for traceability. The gateway's verdict is what
// drives awaiting_payment -> completed.
type IPaymentGateway interface {
	// MockMode reports whether the gateway synthesizes approvals locally
	// instead of calling the provider.
	MockMode() bool
	CreatePayment(ctx context.Context, charge PaymentCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
