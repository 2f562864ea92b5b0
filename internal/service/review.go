// internal/service/review.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/unclebandit/ambassador-campaign/internal/model"
)

// ReviewDesk is the receiving end of submission events. Reviews happen
// outside this system, so it only acknowledges and counts what arrives.
type ReviewDesk struct {
	received atomic.Int64
}

// Handle accepts a model.SubmissionEvent or its JSON encoding.
func (d *ReviewDesk) Handle(payload any) error {
	event, err := decodeSubmissionEvent(payload)
	if err != nil {
		return err
	}
	if event.ReceiptID == "" {
		return fmt.Errorf("submission event without receipt id")
	}

	n := d.received.Add(1)
	log.Printf("📝 Submission %s (%s, %s) queued for review, %d received so far\n",
		event.ReceiptID, event.Platform, event.ContentType, n)
	return nil
}

func (d *ReviewDesk) Received() int64 {
	return d.received.Load()
}

func decodeSubmissionEvent(payload any) (model.SubmissionEvent, error) {
	switch p := payload.(type) {
	case model.SubmissionEvent:
		return p, nil
	case *model.SubmissionEvent:
		if p == nil {
			return model.SubmissionEvent{}, fmt.Errorf("nil submission event")
		}
		return *p, nil
	case json.RawMessage:
		return unmarshalEvent(p)
	case []byte:
		return unmarshalEvent(p)
	}
	return model.SubmissionEvent{}, fmt.Errorf("unexpected payload type %T", payload)
}

func unmarshalEvent(b []byte) (model.SubmissionEvent, error) {
	var event model.SubmissionEvent
	if err := json.Unmarshal(b, &event); err != nil {
		return event, fmt.Errorf("invalid submission event: %w", err)
	}
	return event, nil
}
