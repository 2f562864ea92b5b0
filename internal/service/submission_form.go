// internal/service/submission_form.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/queue"
)

// FormSnapshot is what a page needs to render the form in its current state.
type FormSnapshot struct {
	State   model.FormState
	Values  model.SubmissionInput
	Errors  map[string]string
	Receipt *model.Receipt
}

// SubmissionForm drives one form through
// idle -> validating -> (idle with errors | submitting -> submitted) -> idle.
type SubmissionForm struct {
	Validator *SubmissionValidator
	Gateway   SubmissionGateway
	Queue     queue.Queue

	mu      sync.Mutex
	state   model.FormState
	values  model.SubmissionInput
	errors  map[string]string
	receipt *model.Receipt
	now     func() time.Time
}

func NewSubmissionForm(v *SubmissionValidator, gw SubmissionGateway, q queue.Queue) *SubmissionForm {
	return &SubmissionForm{
		Validator: v,
		Gateway:   gw,
		Queue:     q,
		state:     model.FormIdle,
		now:       time.Now,
	}
}

func (f *SubmissionForm) State() model.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *SubmissionForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return FormSnapshot{State: f.state, Values: f.values, Errors: errs, Receipt: f.receipt}
}

// Validate checks in without touching the form's state.
func (f *SubmissionForm) Validate(in model.SubmissionInput) map[string]string {
	return f.Validator.Validate(in)
}

// Submit validates in and, when it passes, runs the mock round trip. On
// success the form is left in the submitted state holding only a receipt.
func (f *SubmissionForm) Submit(ctx context.Context, in model.SubmissionInput) (*model.Receipt, error) {
	f.mu.Lock()
	switch f.state {
	case model.FormSubmitting:
		f.mu.Unlock()
		return nil, appErrors.ErrSubmissionInFlight
	case model.FormSubmitted:
		f.mu.Unlock()
		return nil, appErrors.ErrAlreadySubmitted
	}

	f.state = model.FormValidating
	if fields := f.Validator.Validate(in); fields != nil {
		f.state = model.FormIdle
		f.values = in
		f.errors = fields
		f.mu.Unlock()
		return nil, appErrors.NewValidationError(fields)
	}

	f.state = model.FormSubmitting
	f.values = in
	f.errors = nil
	f.mu.Unlock()

	if err := f.Gateway.Deliver(ctx, in); err != nil {
		f.mu.Lock()
		f.state = model.FormIdle
		f.mu.Unlock()
		return nil, fmt.Errorf("submission not delivered: %w", err)
	}

	receipt := &model.Receipt{ID: uuid.NewString(), SubmittedAt: f.now().UTC()}

	f.mu.Lock()
	f.state = model.FormSubmitted
	f.values = model.SubmissionInput{}
	f.receipt = receipt
	f.mu.Unlock()

	f.announce(receipt, in)
	return receipt, nil
}

// Reset returns a submitted form to idle so it can be used again.
func (f *SubmissionForm) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == model.FormSubmitting {
		return appErrors.ErrSubmissionInFlight
	}
	f.state = model.FormIdle
	f.values = model.SubmissionInput{}
	f.errors = nil
	f.receipt = nil
	return nil
}

func (f *SubmissionForm) announce(receipt *model.Receipt, in model.SubmissionInput) {
	if f.Queue == nil {
		return
	}
	event := model.SubmissionEvent{
		ReceiptID:   receipt.ID,
		Platform:    in.Platform,
		ContentType: in.ContentType,
		SubmittedAt: receipt.SubmittedAt,
	}
	if err := f.Queue.Publish(queue.SubmissionEventsTopic, event); err != nil {
		log.Println("⚠️ failed to publish submission event", receipt.ID, ":", err)
	}
}
