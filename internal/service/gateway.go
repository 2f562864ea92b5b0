// internal/service/gateway.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/unclebandit/ambassador-campaign/internal/model"
)

// SubmissionGateway is where an accepted submission goes. The only
// implementation is a mock; there is no review backend.
type SubmissionGateway interface {
	Deliver(ctx context.Context, in model.SubmissionInput) error
}

// MockGateway simulates the network round trip with a fixed delay and logs
// the submission instead of sending it anywhere.
type MockGateway struct {
	Delay     time.Duration
	sanitizer *bluemonday.Policy
}

func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{Delay: delay, sanitizer: bluemonday.StrictPolicy()}
}

func (g *MockGateway) Deliver(ctx context.Context, in model.SubmissionInput) error {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	log.Printf("📨 Form submitted: name=%q email=%q university=%q platform=%s postUrl=%q contentType=%q description=%q\n",
		g.sanitizer.Sanitize(in.Name),
		in.Email,
		g.sanitizer.Sanitize(in.University),
		in.Platform,
		in.PostURL,
		in.ContentType,
		g.sanitizer.Sanitize(in.Description),
	)
	return nil
}
