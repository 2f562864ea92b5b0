package service_test

import (
	"strings"
	"testing"

	appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/service"
)

func validInput() model.SubmissionInput {
	return model.SubmissionInput{
		Name:        "Al",
		Email:       "al@x.com",
		University:  "MIT",
		Platform:    "linkedin",
		PostURL:     "https://x.com/1",
		ContentType: "Educational Post",
		Description: "A decent description.",
		Hashtags:    "confirmed",
	}
}

func TestValidateAcceptsScenarioPayload(t *testing.T) {
	v := service.NewSubmissionValidator()
	if errs := v.Validate(validInput()); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}
}

func TestValidateEmail(t *testing.T) {
	v := service.NewSubmissionValidator()

	in := validInput()
	in.Email = "not-an-email"
	errs := v.Validate(in)
	if errs["email"] != "Please enter a valid email address" {
		t.Errorf("expected email error, got %v", errs)
	}

	in.Email = "a@b.com"
	if errs := v.Validate(in); errs != nil {
		t.Errorf("expected a@b.com to pass, got %v", errs)
	}
}

func TestValidateMinimumLengths(t *testing.T) {
	v := service.NewSubmissionValidator()

	in := validInput()
	in.Name = "A"
	in.Description = "too short"
	errs := v.Validate(in)

	if errs["name"] != "Name must be at least 2 characters" {
		t.Errorf("expected name error, got %q", errs["name"])
	}
	if errs["description"] != "Description must be at least 10 characters" {
		t.Errorf("expected description error, got %q", errs["description"])
	}
	if len(errs) != 2 {
		t.Errorf("expected exactly 2 errors, got %v", errs)
	}
}

func TestValidateMissingPostURL(t *testing.T) {
	v := service.NewSubmissionValidator()

	in := validInput()
	in.PostURL = ""
	errs := v.Validate(in)

	if len(errs) != 1 || errs["postUrl"] != "Please enter a valid URL" {
		t.Errorf("expected a single postUrl error, got %v", errs)
	}

	err := v.Check(in)
	verr, ok := appErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["postUrl"]; !ok {
		t.Errorf("expected error keyed to postUrl, got %v", verr.Fields)
	}
	if !strings.Contains(err.Error(), "postUrl") {
		t.Errorf("error text should name the field: %s", err)
	}
}

func TestValidateEnumsAndConfirmation(t *testing.T) {
	v := service.NewSubmissionValidator()

	cases := []struct {
		name  string
		mut   func(*model.SubmissionInput)
		field string
		msg   string
	}{
		{"empty platform", func(in *model.SubmissionInput) { in.Platform = "" }, "platform", "Please select a platform"},
		{"unknown platform", func(in *model.SubmissionInput) { in.Platform = "myspace" }, "platform", "Please select a platform"},
		{"empty content type", func(in *model.SubmissionInput) { in.ContentType = "" }, "contentType", "Please select a content type"},
		{"unknown content type", func(in *model.SubmissionInput) { in.ContentType = "Meme" }, "contentType", "Please select a content type"},
		{"short university", func(in *model.SubmissionInput) { in.University = "X" }, "university", "University name is required"},
		{"bad url", func(in *model.SubmissionInput) { in.PostURL = "not a url" }, "postUrl", "Please enter a valid URL"},
		{"no hashtags", func(in *model.SubmissionInput) { in.Hashtags = "" }, "hashtags", "Please confirm you used the required hashtags"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)
			errs := v.Validate(in)
			if errs[tc.field] != tc.msg {
				t.Errorf("expected %s=%q, got %v", tc.field, tc.msg, errs)
			}
		})
	}
}

func TestValidateAcceptsEveryOption(t *testing.T) {
	v := service.NewSubmissionValidator()

	for _, p := range model.SubmissionPlatforms {
		in := validInput()
		in.Platform = string(p)
		if errs := v.Validate(in); errs != nil {
			t.Errorf("platform %s rejected: %v", p, errs)
		}
	}
	for _, ct := range model.ContentTypes {
		in := validInput()
		in.ContentType = ct
		if errs := v.Validate(in); errs != nil {
			t.Errorf("content type %s rejected: %v", ct, errs)
		}
	}
}

func TestValidateEmptyFormReportsEveryField(t *testing.T) {
	v := service.NewSubmissionValidator()
	errs := v.Validate(model.SubmissionInput{})

	for _, field := range []string{"name", "email", "university", "platform", "postUrl", "contentType", "description", "hashtags"} {
		if errs[field] == "" {
			t.Errorf("expected an error for %s", field)
		}
	}
}
