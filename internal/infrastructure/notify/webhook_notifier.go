package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"conserta_ja/internal/usecase/interfaces"
)

const (
	requestTimeout = 5 * time.Second
	retryBackoff   = 2 * time.Second
)

// WebhookNotifier posts lifecycle events to a configured webhook URL.
// Delivery is fire-and-forget: failures are logged and retried once, never
// surfaced to the request that produced the event.

type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier returns a no-op notifier when url is empty.
func NewWebhookNotifier(url string) interfaces.INotifier {
	if url == "" {
		log.Printf("[notify][webhook] no webhook url configured; events will not be delivered")
		return nopNotifier{}
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

type eventPayload struct {
	Event string    `json:"event"`
	JobID string    `json:"job_id"`
	At    time.Time `json:"at"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, event, jobID string) {
	body, err := json.Marshal(eventPayload{Event: event, JobID: jobID, At: time.Now().UTC()})
	if err != nil {
		log.Printf("[notify][webhook] marshal failed event=%s job_id=%s err=%v", event, jobID, err)
		return
	}

	// Detach from the request context so delivery survives the response.
	go n.deliver(event, jobID, body)
}

func (n *WebhookNotifier) deliver(event, jobID string, body []byte) {
	for attempt := 1; attempt <= 2; attempt++ {
		if err := n.post(body); err != nil {
			log.Printf("[notify][webhook] delivery failed event=%s job_id=%s attempt=%d err=%v", event, jobID, attempt, err)
			if attempt < 2 {
				time.Sleep(retryBackoff)
			}
			continue
		}
		return
	}
	log.Printf("[notify][webhook] giving up event=%s job_id=%s", event, jobID)
}

func (n *WebhookNotifier) post(body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &statusError{code: resp.StatusCode}
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "webhook responded with status " + http.StatusText(e.code)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, string) {}
