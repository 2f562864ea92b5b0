// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/unclebandit/ambassador-campaign/internal/config"
	"github.com/unclebandit/ambassador-campaign/internal/controller"
	"github.com/unclebandit/ambassador-campaign/internal/handler"
	"github.com/unclebandit/ambassador-campaign/internal/middleware"
	"github.com/unclebandit/ambassador-campaign/internal/queue"
	"github.com/unclebandit/ambassador-campaign/internal/repository"
	"github.com/unclebandit/ambassador-campaign/internal/service"
	"github.com/unclebandit/ambassador-campaign/internal/view"
)

// Server holds the wired application.
type Server struct {
	Feeds       *service.FeedService
	Submissions *service.SubmissionService
	Router      http.Handler

	feedStore *repository.SessionStore[*service.Feed]
	formStore *repository.SessionStore[*service.SubmissionForm]
}

// New wires repositories, services and routes. gw may be nil, in which case
// the mock gateway with cfg.SubmitDelay is used.
func New(cfg *config.Config, q queue.Queue, gw service.SubmissionGateway) (*Server, error) {
	renderer, err := view.NewRenderer(cfg.SiteName)
	if err != nil {
		return nil, err
	}
	if gw == nil {
		gw = service.NewMockGateway(cfg.SubmitDelay)
	}

	contentRepo := &repository.ContentRepository{}
	postRepo := &repository.PostRepository{}
	feedStore := repository.NewSessionStore[*service.Feed](cfg.SessionTTL)
	formStore := repository.NewSessionStore[*service.SubmissionForm](cfg.SessionTTL)

	contentService := &service.ContentService{ContentRepo: contentRepo}
	feedService := &service.FeedService{PostRepo: postRepo, Feeds: feedStore}
	submissionService := &service.SubmissionService{
		Validator: service.NewSubmissionValidator(),
		Gateway:   gw,
		Queue:     q,
		Forms:     formStore,
	}

	pages := &handler.PageHandler{
		Renderer:    renderer,
		Content:     contentService,
		Feeds:       feedService,
		Submissions: submissionService,
	}
	feedController := &controller.FeedController{FeedService: feedService}
	submissionController := &controller.SubmissionController{SubmissionService: submissionService}
	contentController := &controller.ContentController{ContentService: contentService}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecureHeaders)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Get("/", pages.Home)
		r.Get("/campaign", pages.Campaign)
		r.Get("/social", pages.OpenSocial)
		r.Get("/social/{feedID}", pages.Social)
		r.Post("/social/{feedID}/posts/{postID}/like", pages.LikePost)
		r.Get("/submit", pages.SubmitForm)
		r.Post("/submit", pages.SubmitPost)
		r.Post("/submit/reset", pages.SubmitReset)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/campaign", contentController.Campaign)
		r.Get("/samples", contentController.Samples)
		r.Post("/feeds", feedController.CreateFeed)
		r.Get("/feeds/{feedID}/posts", feedController.ListPosts)
		r.Post("/feeds/{feedID}/posts/{postID}/like", feedController.ToggleLike)
		r.Get("/submission-options", submissionController.Options)
		r.Post("/submissions", submissionController.Submit)
	})

	r.NotFound(pages.NotFound)

	return &Server{
		Feeds:       feedService,
		Submissions: submissionService,
		Router:      r,
		feedStore:   feedStore,
		formStore:   formStore,
	}, nil
}

// StartJanitors evicts idle feeds and forms until ctx is done.
func (s *Server) StartJanitors(ctx context.Context, interval time.Duration) {
	s.feedStore.StartJanitor(ctx, interval)
	s.formStore.StartJanitor(ctx, interval)
}
