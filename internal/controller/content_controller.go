// internal/controller/content_controller.go
package controller

import (
    "net/http"

    "github.com/unclebandit/ambassador-campaign/internal/service"
)

type ContentController struct {
    ContentService *service.ContentService
}

func (c *ContentController) Campaign(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, c.ContentService.Campaign())
}

func (c *ContentController) Samples(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, c.ContentService.Home())
}
