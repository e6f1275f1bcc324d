package request

// QuoteRequest carries the provider's line items for a diagnose-first job.
// The server recomputes the total; any client-sent total is ignored.
type QuoteRequest struct {
	LaborCost     float64 `json:"labor_cost" binding:"required"`
	MaterialsCost float64 `json:"materials_cost"`
}

// QuoteDecisionRequest is the customer's answer to a submitted quote.
// Accept is a pointer so an omitted field fails binding instead of silently
// rejecting the quote.
type QuoteDecisionRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
