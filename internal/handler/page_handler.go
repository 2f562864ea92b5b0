// internal/handler/page_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/service"
	"github.com/unclebandit/ambassador-campaign/internal/view"
)

// Cookie carrying the visitor's submission form session.
const SubmissionCookie = "submission_session"

// PageHandler serves the HTML pages
type PageHandler struct {
	Renderer    *view.Renderer
	Content     *service.ContentService
	Feeds       *service.FeedService
	Submissions *service.SubmissionService
}

type socialData struct {
	FeedID  string
	Filter  service.FeedFilter
	Filters []service.FeedFilter
	Posts   []model.SocialPost
}

type submitData struct {
	Values  model.SubmissionInput
	Errors  map[string]string
	Options service.SubmissionOptions
	Pending bool
}

type submittedData struct {
	Receipt *model.Receipt
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "home.html", view.Page{
		Title:  "Home",
		Active: "home",
		Data:   h.Content.Home(),
	})
}

func (h *PageHandler) Campaign(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "campaign.html", view.Page{
		Title:  "Campaign Details",
		Active: "campaign",
		Data:   h.Content.Campaign(),
	})
}

// OpenSocial seeds a new feed on every visit, so earlier likes are gone.
func (h *PageHandler) OpenSocial(w http.ResponseWriter, r *http.Request) {
	filter, err := service.ParseFeedFilter(r.URL.Query().Get("filter"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid Filter", err.Error())
		return
	}

	feedID, feed := h.Feeds.OpenFeed()
	h.renderFeed(w, feedID, filter, feed.ListPosts(filter))
}

func (h *PageHandler) Social(w http.ResponseWriter, r *http.Request) {
	feedID := chi.URLParam(r, "feedID")

	filter, err := service.ParseFeedFilter(r.URL.Query().Get("filter"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid Filter", err.Error())
		return
	}

	posts, err := h.Feeds.ListPosts(feedID, filter)
	if errors.Is(err, appErrors.ErrFeedNotFound) {
		http.Redirect(w, r, "/social", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}

	h.renderFeed(w, feedID, filter, posts)
}

func (h *PageHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	feedID := chi.URLParam(r, "feedID")
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid Post", "invalid post id")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid Request", "invalid form body")
		return
	}
	filter, err := service.ParseFeedFilter(r.PostForm.Get("filter"))
	if err != nil {
		filter = service.FilterAll
	}

	_, err = h.Feeds.ToggleLike(feedID, postID)
	switch {
	case errors.Is(err, appErrors.ErrFeedNotFound):
		http.Redirect(w, r, "/social", http.StatusSeeOther)
		return
	case appErrors.IsPostNotFound(err):
		h.renderError(w, http.StatusNotFound, "Post Not Found", err.Error())
		return
	case err != nil:
		h.renderError(w, http.StatusInternalServerError, "Something went wrong", err.Error())
		return
	}

	target := "/social/" + url.PathEscape(feedID) + "?filter=" + url.QueryEscape(string(filter))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	form := h.formSession(w, r)
	snap := form.Snapshot()

	if snap.State == model.FormSubmitted {
		h.Renderer.Render(w, http.StatusOK, "submitted.html", view.Page{
			Title:  "Submission Successful",
			Active: "submit",
			Data:   submittedData{Receipt: snap.Receipt},
		})
		return
	}

	h.renderSubmit(w, http.StatusOK, snap.Values, snap.Errors, snap.State == model.FormSubmitting)
}

func (h *PageHandler) SubmitPost(w http.ResponseWriter, r *http.Request) {
	form := h.formSession(w, r)

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid Request", "invalid form body")
		return
	}
	in := model.SubmissionInput{
		Name:        r.PostForm.Get("name"),
		Email:       r.PostForm.Get("email"),
		University:  r.PostForm.Get("university"),
		Platform:    r.PostForm.Get("platform"),
		PostURL:     r.PostForm.Get("postUrl"),
		ContentType: r.PostForm.Get("contentType"),
		Description: r.PostForm.Get("description"),
		Hashtags:    r.PostForm.Get("hashtags"),
	}

	_, err := form.Submit(r.Context(), in)
	if verr, ok := appErrors.AsValidation(err); ok {
		h.renderSubmit(w, http.StatusUnprocessableEntity, in, verr.Fields, false)
		return
	}
	switch {
	case errors.Is(err, appErrors.ErrSubmissionInFlight):
		h.renderSubmit(w, http.StatusConflict, in, map[string]string{"form": err.Error()}, true)
		return
	case errors.Is(err, appErrors.ErrAlreadySubmitted):
		// the success page is what the visitor should be looking at
	case err != nil:
		log.Println("⚠️ Submission failed:", err)
		h.renderSubmit(w, http.StatusServiceUnavailable, in, map[string]string{"form": "Submission did not complete, please try again."}, false)
		return
	}

	http.Redirect(w, r, "/submit", http.StatusSeeOther)
}

func (h *PageHandler) SubmitReset(w http.ResponseWriter, r *http.Request) {
	form := h.formSession(w, r)
	if err := form.Reset(); err != nil {
		h.renderSubmit(w, http.StatusConflict, model.SubmissionInput{}, map[string]string{"form": err.Error()}, true)
		return
	}
	http.Redirect(w, r, "/submit", http.StatusSeeOther)
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, http.StatusNotFound, "Page Not Found", "The page you are looking for does not exist.")
}

// formSession resolves the visitor's form from the cookie, opening a new one
// when needed, and (re)issues the cookie.
func (h *PageHandler) formSession(w http.ResponseWriter, r *http.Request) *service.SubmissionForm {
	var current string
	if c, err := r.Cookie(SubmissionCookie); err == nil {
		current = c.Value
	}

	id, form := h.Submissions.FormFor(current)
	if id != current {
		http.SetCookie(w, &http.Cookie{
			Name:     SubmissionCookie,
			Value:    id,
			Path:     "/submit",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return form
}

func (h *PageHandler) renderFeed(w http.ResponseWriter, feedID string, filter service.FeedFilter, posts []model.SocialPost) {
	h.Renderer.Render(w, http.StatusOK, "social.html", view.Page{
		Title:  "Social Media Feed",
		Active: "social",
		Data: socialData{
			FeedID:  feedID,
			Filter:  filter,
			Filters: service.FeedFilters,
			Posts:   posts,
		},
	})
}

func (h *PageHandler) renderSubmit(w http.ResponseWriter, status int, values model.SubmissionInput, errs map[string]string, pending bool) {
	if errs == nil {
		errs = map[string]string{}
	}
	h.Renderer.Render(w, status, "submit.html", view.Page{
		Title:  "Submit Your Content",
		Active: "submit",
		Data: submitData{
			Values:  values,
			Errors:  errs,
			Options: h.Submissions.Options(),
			Pending: pending,
		},
	})
}

func (h *PageHandler) renderError(w http.ResponseWriter, status int, title, msg string) {
	h.Renderer.Render(w, status, "error.html", view.Page{Title: title, Data: msg})
}
