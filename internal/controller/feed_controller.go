// internal/controller/feed_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
    "github.com/unclebandit/ambassador-campaign/internal/service"
)

type FeedController struct {
    FeedService *service.FeedService
}

func (c *FeedController) CreateFeed(w http.ResponseWriter, r *http.Request) {
    feedID, feed := c.FeedService.OpenFeed()

    writeJSON(w, http.StatusCreated, map[string]interface{}{
        "feed_id": feedID,
        "data":    feed.ListPosts(service.FilterAll),
    })
}

func (c *FeedController) ListPosts(w http.ResponseWriter, r *http.Request) {
    feedID := chi.URLParam(r, "feedID")

    filter, err := service.ParseFeedFilter(r.URL.Query().Get("filter"))
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    posts, err := c.FeedService.ListPosts(feedID, filter)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "feed_id": feedID,
        "filter":  filter,
        "data":    posts,
    })
}

func (c *FeedController) ToggleLike(w http.ResponseWriter, r *http.Request) {
    feedID := chi.URLParam(r, "feedID")
    postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
    if err != nil {
        http.Error(w, "invalid post id", http.StatusBadRequest)
        return
    }

    post, err := c.FeedService.ToggleLike(feedID, postID)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, post)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors onto status codes; anything unknown is a 500.
func writeError(w http.ResponseWriter, err error) {
    if verr, ok := appErrors.AsValidation(err); ok {
        writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": verr.Fields})
        return
    }

    status := http.StatusInternalServerError
    switch {
    case errors.Is(err, appErrors.ErrFeedNotFound), errors.Is(err, appErrors.ErrFormNotFound), appErrors.IsPostNotFound(err):
        status = http.StatusNotFound
    case errors.Is(err, appErrors.ErrInvalidFilter):
        status = http.StatusBadRequest
    case errors.Is(err, appErrors.ErrSubmissionInFlight), errors.Is(err, appErrors.ErrAlreadySubmitted):
        status = http.StatusConflict
    }
    http.Error(w, err.Error(), status)
}
