// internal/controller/submission_controller.go
package controller

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/unclebandit/ambassador-campaign/internal/model"
    "github.com/unclebandit/ambassador-campaign/internal/service"
)

type SubmissionController struct {
    SubmissionService *service.SubmissionService
}

func (c *SubmissionController) Submit(w http.ResponseWriter, r *http.Request) {
    var body model.SubmissionInput
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    receipt, err := c.SubmissionService.Submit(r.Context(), body)
    if err != nil {
        log.Println("⚠️ Submission rejected:", err)
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, map[string]interface{}{
        "status":  model.FormSubmitted,
        "receipt": receipt,
    })
}

func (c *SubmissionController) Options(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, c.SubmissionService.Options())
}
