package handlers

import (
	"net/http"

	"timesheet/catalog"
	"timesheet/timeslot"
	"timesheet/week"
)

// MetaHandler serves the fixed, unauthenticated selection domains: the
// week list, the project/service catalogs and the time-slot grid.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type weekInfo struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Min    string `json:"min"`
	Max    string `json:"max"`
}

func (h *MetaHandler) Weeks(w http.ResponseWriter, r *http.Request) {
	weeks := make([]weekInfo, 0, 52)
	for _, n := range week.All() {
		min, max := week.DateBounds(n)
		weeks = append(weeks, weekInfo{
			Number: n,
			Label:  week.FormatRange(n),
			Min:    min,
			Max:    max,
		})
	}
	respond(w, map[string]interface{}{
		"year":  week.ReferenceYear,
		"weeks": weeks,
	})
}

func (h *MetaHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respond(w, map[string]interface{}{
		"projects":           catalog.Projects,
		"scope_none":         catalog.ScopeNone,
		"service_categories": catalog.ServiceCategories,
	})
}

func (h *MetaHandler) Timeslots(w http.ResponseWriter, r *http.Request) {
	respond(w, timeslot.Options())
}
