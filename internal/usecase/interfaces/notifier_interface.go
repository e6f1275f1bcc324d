package interfaces

import "context"

// INotifier abstracts the out-of-scope notification dispatcher.
//
// Notify is fire-and-forget: implementations must never block the calling
// transition and their failures must never roll it back. The engine calls it
// after every committed state transition and code issuance.
type INotifier interface {
	Notify(ctx context.Context, event, jobID string)
}
