package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/service"
)

func TestReviewDeskHandlesEvents(t *testing.T) {
	desk := &service.ReviewDesk{}
	event := model.SubmissionEvent{ReceiptID: "r-1", Platform: "twitter", ContentType: "Other", SubmittedAt: time.Now()}

	if err := desk.Handle(event); err != nil {
		t.Fatalf("struct payload: %v", err)
	}
	if err := desk.Handle(&event); err != nil {
		t.Fatalf("pointer payload: %v", err)
	}

	raw, _ := json.Marshal(event)
	if err := desk.Handle(json.RawMessage(raw)); err != nil {
		t.Fatalf("json payload: %v", err)
	}

	if desk.Received() != 3 {
		t.Errorf("expected 3 received, got %d", desk.Received())
	}
}

func TestReviewDeskRejectsGarbage(t *testing.T) {
	desk := &service.ReviewDesk{}

	for name, payload := range map[string]any{
		"wrong type":  42,
		"bad json":    json.RawMessage(`{"receipt_id":`),
		"no receipt":  model.SubmissionEvent{Platform: "linkedin"},
		"nil pointer": (*model.SubmissionEvent)(nil),
	} {
		if err := desk.Handle(payload); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if desk.Received() != 0 {
		t.Errorf("rejected events must not be counted")
	}
}
