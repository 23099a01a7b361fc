package handlers

import (
	"fmt"
	"net/http"

	"timesheet/config"
	"timesheet/export"
	"timesheet/middleware"
)

type ExportHandler struct {
	config *config.Config
}

func NewExportHandler(cfg *config.Config) *ExportHandler {
	return &ExportHandler{config: cfg}
}

// CSV streams the selected week as a file download. An empty week is a
// 400: export stays disabled until there is something to export.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	weekNumber, ok := weekParam(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid week (must be 1-52)", nil)
		return
	}

	entries, err := loadWeek(targetEngineerID(r, engineer), weekNumber)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load entries", err)
		return
	}
	if len(entries) == 0 {
		respondWithError(w, http.StatusBadRequest, "No entries for the selected week", nil)
		return
	}

	filename := export.Filename(engineer.DisplayName(), weekNumber)
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write([]byte(export.CSV(entries, weekNumber)))
}

// Email returns the submission draft for the selected week: subject,
// body, a mailto target and the plain-text clipboard rendering.
func (h *ExportHandler) Email(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	weekNumber, ok := weekParam(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid week (must be 1-52)", nil)
		return
	}

	entries, err := loadWeek(targetEngineerID(r, engineer), weekNumber)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load entries", err)
		return
	}
	if len(entries) == 0 {
		respondWithError(w, http.StatusBadRequest, "No entries for the selected week", nil)
		return
	}

	draft := export.Email(engineer.DisplayName(), weekNumber, export.Aggregate(entries))
	respond(w, map[string]interface{}{
		"subject":   draft.Subject,
		"body":      draft.Body,
		"mailto":    export.MailtoURL(draft),
		"clipboard": export.ClipboardText(draft),
	})
}
