package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"timesheet/catalog"
	"timesheet/config"
	"timesheet/database"
	"timesheet/derive"
	"timesheet/export"
	"timesheet/middleware"
	"timesheet/models"
	"timesheet/timeslot"

	"github.com/go-chi/chi/v5"
)

type EntryHandler struct {
	config *config.Config
}

func NewEntryHandler(cfg *config.Config) *EntryHandler {
	return &EntryHandler{config: cfg}
}

// entryView is an entry plus everything recomputed on every read:
// derived hours, advisory errors and the daily-hours warning.
type entryView struct {
	models.TimesheetEntry
	Hours   float64           `json:"hours"`
	Total   float64           `json:"total"`
	Errors  map[string]string `json:"errors"`
	Warning string            `json:"warning,omitempty"`
}

func buildView(e models.TimesheetEntry, weekNumber int, siblings []models.TimesheetEntry) entryView {
	hours := derive.Duration(e)
	return entryView{
		TimesheetEntry: e,
		Hours:          hours,
		Total:          derive.Total(e),
		Errors:         derive.Errors(e, weekNumber, siblings),
		Warning:        derive.Warning(hours),
	}
}

// weekParam parses the required week query parameter.
func weekParam(r *http.Request) (int, bool) {
	weekStr := r.URL.Query().Get("week")
	w, err := strconv.Atoi(weekStr)
	if err != nil || w < 1 || w > 52 {
		return 0, false
	}
	return w, true
}

// targetEngineerID resolves whose entries the request addresses. Plain
// engineers always act on their own; admins may pass engineer_id.
func targetEngineerID(r *http.Request, engineer *models.Engineer) uint {
	idStr := r.URL.Query().Get("engineer_id")
	if idStr == "" || !engineer.IsAdmin() {
		return engineer.ID
	}
	if id, err := strconv.ParseUint(idStr, 10, 32); err == nil {
		return uint(id)
	}
	return engineer.ID
}

// loadWeek returns an engineer's entries for one week in insertion
// order.
func loadWeek(engineerID uint, weekNumber int) ([]models.TimesheetEntry, error) {
	var entries []models.TimesheetEntry
	err := database.GetDB().
		Where("engineer_id = ? AND week = ?", engineerID, weekNumber).
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
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

	views := make([]entryView, len(entries))
	for i, e := range entries {
		views[i] = buildView(e, weekNumber, entries)
	}
	respond(w, views)
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	weekNumber, ok := weekParam(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid week (must be 1-52)", nil)
		return
	}

	targetID := targetEngineerID(r, engineer)
	if !engineer.CanManageEntriesFor(targetID) {
		respondWithError(w, http.StatusForbidden, "Forbidden", nil)
		return
	}

	entry := models.NewEntry(targetID, weekNumber)
	if err := database.GetDB().Create(&entry).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create entry", err)
		return
	}

	siblings, err := loadWeek(targetID, weekNumber)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load entries", err)
		return
	}
	respondWithStatus(w, buildView(entry, weekNumber, siblings), http.StatusCreated)
}

type entryUpdateRequest struct {
	Date            string `json:"date"`
	Project         string `json:"project"`
	Scope           string `json:"scope"`
	ServiceCategory string `json:"service_category"`
	ServiceType     string `json:"service_type"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	TravelTime      string `json:"travel_time"`
	Comments        string `json:"comments"`
}

// checkCatalog rejects values that do not exist in the fixed selection
// domains. Empty values pass; flagging them is the advisory engine's
// job.
func checkCatalog(request entryUpdateRequest) string {
	if request.Project != "" && !catalog.ValidProject(request.Project) {
		return "Unknown project code"
	}
	if request.Scope != "" && !catalog.ValidScope(request.Project, request.Scope) {
		return "Unknown scope for project"
	}
	if request.ServiceCategory != "" && !catalog.ValidServiceCategory(request.ServiceCategory) {
		return "Unknown service category"
	}
	if request.ServiceType != "" && !catalog.ValidServiceType(request.ServiceCategory, request.ServiceType) {
		return "Unknown service type for category"
	}
	if request.StartTime != "" && !timeslot.Valid(request.StartTime) {
		return "Start time must be on the 15-minute grid"
	}
	if request.EndTime != "" && !timeslot.Valid(request.EndTime) {
		return "End time must be on the 15-minute grid"
	}
	return ""
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var entry models.TimesheetEntry
	if err := database.GetDB().First(&entry, "id = ?", id).Error; err != nil {
		respondWithError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}

	if !engineer.CanManageEntriesFor(entry.EngineerID) {
		respondWithError(w, http.StatusForbidden, "Forbidden", nil)
		return
	}

	var request entryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if msg := checkCatalog(request); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg, nil)
		return
	}

	// Week stays what it was at creation; everything else is mutable.
	entry.Date = request.Date
	entry.Project = request.Project
	entry.Scope = request.Scope
	entry.ServiceCategory = request.ServiceCategory
	entry.ServiceType = request.ServiceType
	entry.StartTime = request.StartTime
	entry.EndTime = request.EndTime
	entry.TravelTime = request.TravelTime
	entry.Comments = request.Comments

	if err := database.GetDB().Save(&entry).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update entry", err)
		return
	}

	siblings, err := loadWeek(entry.EngineerID, entry.Week)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load entries", err)
		return
	}
	respond(w, buildView(entry, entry.Week, siblings))
}

func (h *EntryHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var entry models.TimesheetEntry
	if err := database.GetDB().First(&entry, "id = ?", id).Error; err != nil {
		respondWithError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}

	if !engineer.CanManageEntriesFor(entry.EngineerID) {
		respondWithError(w, http.StatusForbidden, "Forbidden", nil)
		return
	}

	dup := entry.Duplicate()
	if err := database.GetDB().Create(&dup).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to duplicate entry", err)
		return
	}

	siblings, err := loadWeek(dup.EngineerID, dup.Week)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load entries", err)
		return
	}
	respondWithStatus(w, buildView(dup, dup.Week, siblings), http.StatusCreated)
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var entry models.TimesheetEntry
	if err := database.GetDB().First(&entry, "id = ?", id).Error; err != nil {
		respondWithError(w, http.StatusNotFound, "Entry not found", nil)
		return
	}

	if !engineer.CanManageEntriesFor(entry.EngineerID) {
		respondWithError(w, http.StatusForbidden, "Forbidden", nil)
		return
	}

	if err := database.GetDB().Delete(&entry).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		return
	}
	respondNoContent(w)
}

// Reset deletes every entry the engineer owns, across all weeks.
func (h *EntryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())

	targetID := targetEngineerID(r, engineer)
	if !engineer.CanManageEntriesFor(targetID) {
		respondWithError(w, http.StatusForbidden, "Forbidden", nil)
		return
	}

	if err := database.GetDB().
		Where("engineer_id = ?", targetID).
		Delete(&models.TimesheetEntry{}).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset entries", err)
		return
	}
	respondNoContent(w)
}

func (h *EntryHandler) Totals(w http.ResponseWriter, r *http.Request) {
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

	totals := export.Aggregate(entries)
	respond(w, map[string]interface{}{
		"week":     weekNumber,
		"entries":  len(entries),
		"hours":    totals.Hours,
		"travel":   totals.Travel,
		"total":    totals.Total,
		"projects": totals.Projects,
	})
}
