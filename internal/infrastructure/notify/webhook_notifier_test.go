package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWebhookNotifier_Delivers(t *testing.T) {
	received := make(chan eventPayload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p eventPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		received <- p
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL)
	n.Notify(context.Background(), "job.created", "job-1")

	select {
	case p := <-received:
		if p.Event != "job.created" || p.JobID != "job-1" {
			t.Fatalf("unexpected payload %+v", p)
		}
		if p.At.IsZero() {
			t.Fatal("expected a delivery timestamp")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not called")
	}
}

func TestWebhookNotifier_RetriesOnce(t *testing.T) {
	attempts := make(chan struct{}, 3)
	var count int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts <- struct{}{}
		if atomic.AddInt32(&count, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL)
	n.Notify(context.Background(), "job.cancelled", "job-1")

	deadline := time.After(5 * time.Second)
	for i := 0; i < 2; i++ {
		select {
		case <-attempts:
		case <-deadline:
			t.Fatalf("expected 2 delivery attempts, saw %d", i)
		}
	}
}

func TestNewWebhookNotifier_EmptyURL(t *testing.T) {
	n := NewWebhookNotifier("")
	// Must be safe to call without panicking or making requests.
	n.Notify(context.Background(), "job.created", "job-1")
}
