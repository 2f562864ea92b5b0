// internal/model/submission.go
package model

import "time"

// Platforms a submission may be posted on.
var SubmissionPlatforms = []Platform{PlatformLinkedIn, PlatformInstagram, PlatformTwitter}

var ContentTypes = []string{
    "Educational Post",
    "Creative Project",
    "Tutorial/How-to",
    "Personal Experience",
    "AI Tool Review",
    "Community Discussion",
    "Other",
}

// HashtagsConfirmed is the value the confirmation checkbox posts.
const HashtagsConfirmed = "confirmed"

type SubmissionInput struct {
    Name        string `json:"name" validate:"required,min=2"`
    Email       string `json:"email" validate:"required,email"`
    University  string `json:"university" validate:"required,min=2"`
    Platform    string `json:"platform" validate:"platform"`
    PostURL     string `json:"postUrl" validate:"required,url"`
    ContentType string `json:"contentType" validate:"contenttype"`
    Description string `json:"description" validate:"required,min=10"`
    Hashtags    string `json:"hashtags" validate:"required"`
}

type FormState string

const (
    FormIdle       FormState = "idle"
    FormValidating FormState = "validating"
    FormSubmitting FormState = "submitting"
    FormSubmitted  FormState = "submitted"
)

// Receipt acknowledges an accepted submission without echoing any of it.
type Receipt struct {
    ID          string    `json:"id"`
    SubmittedAt time.Time `json:"submitted_at"`
}

// SubmissionEvent is what reviewers get told about an accepted submission.
type SubmissionEvent struct {
    ReceiptID   string    `json:"receipt_id"`
    Platform    string    `json:"platform"`
    ContentType string    `json:"content_type"`
    SubmittedAt time.Time `json:"submitted_at"`
}
