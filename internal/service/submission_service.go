// internal/service/submission_service.go
package service

import (
	"context"

	appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/queue"
	"github.com/unclebandit/ambassador-campaign/internal/repository"
)

type SubmissionService struct {
	Validator *SubmissionValidator
	Gateway   SubmissionGateway
	Queue     queue.Queue
	Forms     *repository.SessionStore[*SubmissionForm]
}

func (s *SubmissionService) newForm() *SubmissionForm {
	return NewSubmissionForm(s.Validator, s.Gateway, s.Queue)
}

// OpenForm starts a fresh idle form session.
func (s *SubmissionService) OpenForm() (string, *SubmissionForm) {
	form := s.newForm()
	return s.Forms.Create(form), form
}

func (s *SubmissionService) GetForm(formID string) (*SubmissionForm, error) {
	form, ok := s.Forms.Get(formID)
	if !ok {
		return nil, appErrors.ErrFormNotFound
	}
	return form, nil
}

// FormFor returns the session's form, opening a new one when formID is
// unknown or expired. The returned id is the one to hand back to the client.
func (s *SubmissionService) FormFor(formID string) (string, *SubmissionForm) {
	if formID != "" {
		if form, err := s.GetForm(formID); err == nil {
			return formID, form
		}
	}
	return s.OpenForm()
}

// Submit runs a one-shot form, for callers that keep no session.
func (s *SubmissionService) Submit(ctx context.Context, in model.SubmissionInput) (*model.Receipt, error) {
	return s.newForm().Submit(ctx, in)
}

// Options lists the choices the form offers.
func (s *SubmissionService) Options() SubmissionOptions {
	platforms := make([]PlatformOption, 0, len(model.SubmissionPlatforms))
	for _, p := range model.SubmissionPlatforms {
		platforms = append(platforms, PlatformOption{Value: string(p), Label: p.Label()})
	}
	return SubmissionOptions{
		Platforms:        platforms,
		ContentTypes:     append([]string(nil), model.ContentTypes...),
		RequiredHashtags: append([]string(nil), model.RequiredHashtags...),
	}
}

type PlatformOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SubmissionOptions struct {
	Platforms        []PlatformOption `json:"platforms"`
	ContentTypes     []string         `json:"content_types"`
	RequiredHashtags []string         `json:"required_hashtags"`
}
