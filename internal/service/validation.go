// internal/service/validation.go
package service

import (
    "reflect"
    "slices"
    "strings"

    "github.com/go-playground/validator/v10"

    appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
    "github.com/unclebandit/ambassador-campaign/internal/model"
)

// Messages shown next to each rejected form field.
var fieldMessages = map[string]string{
    "name":        "Name must be at least 2 characters",
    "email":       "Please enter a valid email address",
    "university":  "University name is required",
    "platform":    "Please select a platform",
    "postUrl":     "Please enter a valid URL",
    "contentType": "Please select a content type",
    "description": "Description must be at least 10 characters",
    "hashtags":    "Please confirm you used the required hashtags",
}

type SubmissionValidator struct {
    v *validator.Validate
}

func NewSubmissionValidator() *SubmissionValidator {
    v := validator.New(validator.WithRequiredStructEnabled())

    // report fields under their JSON names so errors line up with the form
    v.RegisterTagNameFunc(func(fld reflect.StructField) string {
        name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
        if name == "-" {
            return ""
        }
        return name
    })

    _ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
        return slices.Contains(model.SubmissionPlatforms, model.Platform(fl.Field().String()))
    })
    _ = v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
        return slices.Contains(model.ContentTypes, fl.Field().String())
    })

    return &SubmissionValidator{v: v}
}

// Validate returns every rejected field with its message, or nil when the
// input is acceptable.
func (s *SubmissionValidator) Validate(in model.SubmissionInput) map[string]string {
    err := s.v.Struct(in)
    if err == nil {
        return nil
    }

    fields := map[string]string{}
    verrs, ok := err.(validator.ValidationErrors)
    if !ok {
        // only reachable on programmer error (e.g. bad tag), surface it on the form
        fields["form"] = err.Error()
        return fields
    }
    for _, fe := range verrs {
        if _, seen := fields[fe.Field()]; seen {
            continue
        }
        msg, ok := fieldMessages[fe.Field()]
        if !ok {
            msg = fe.Error()
        }
        fields[fe.Field()] = msg
    }
    return fields
}

// Check wraps Validate into an error for callers that only need pass/fail.
func (s *SubmissionValidator) Check(in model.SubmissionInput) error {
    if fields := s.Validate(in); fields != nil {
        return appErrors.NewValidationError(fields)
    }
    return nil
}
