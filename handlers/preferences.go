package handlers

import (
	"encoding/json"
	"net/http"

	"timesheet/config"
	"timesheet/database"
	"timesheet/middleware"
	"timesheet/models"

	"github.com/go-playground/validator/v10"
)

type PreferenceHandler struct {
	config *config.Config
}

func NewPreferenceHandler(cfg *config.Config) *PreferenceHandler {
	return &PreferenceHandler{config: cfg}
}

func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())

	var pref models.Preference
	err := database.GetDB().
		Where(models.Preference{EngineerID: engineer.ID}).
		FirstOrCreate(&pref).Error
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load preferences", err)
		return
	}
	respond(w, pref)
}

type preferenceRequest struct {
	Theme        string `json:"theme" validate:"omitempty,oneof=light dark"`
	HasStarted   bool   `json:"has_started"`
	SelectedWeek int    `json:"selected_week" validate:"min=0,max=52"`
}

// Put writes preference scalars through immediately; there is no
// batching for these, only the entry collection is interval-saved.
func (h *PreferenceHandler) Put(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())

	var request preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	v := validator.New()
	if err := v.Struct(request); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			respondWithError(w, http.StatusBadRequest, "Field "+e.Field()+" is invalid", nil)
			return
		}
	}

	var pref models.Preference
	err := database.GetDB().
		Where(models.Preference{EngineerID: engineer.ID}).
		FirstOrCreate(&pref).Error
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load preferences", err)
		return
	}

	if request.Theme != "" {
		pref.Theme = request.Theme
	}
	pref.HasStarted = request.HasStarted
	pref.SelectedWeek = request.SelectedWeek

	if err := database.GetDB().Save(&pref).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save preferences", err)
		return
	}
	respond(w, pref)
}
