package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimesheetEntry is one logged work item. The id and owning week are
// fixed at creation; every other field is edited freely and judged
// after the fact by the derive package. Derived values (duration,
// total, validity) are never stored.
type TimesheetEntry struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	EngineerID      uint           `gorm:"not null;index" json:"engineer_id"`
	Engineer        Engineer       `gorm:"foreignKey:EngineerID" json:"engineer,omitempty"`
	Week            int            `gorm:"not null;index" json:"week"`
	Date            string         `gorm:"size:10" json:"date"`
	Project         string         `gorm:"size:50" json:"project"`
	Scope           string         `gorm:"size:100" json:"scope"`
	ServiceCategory string         `gorm:"size:100" json:"service_category"`
	ServiceType     string         `gorm:"size:100" json:"service_type"`
	StartTime       string         `gorm:"size:5" json:"start_time"`
	EndTime         string         `gorm:"size:5" json:"end_time"`
	TravelTime      string         `gorm:"size:10" json:"travel_time"`
	Comments        string         `gorm:"size:500" json:"comments"`
}

// NewEntry creates an empty entry bound to an engineer and week.
func NewEntry(engineerID uint, week int) TimesheetEntry {
	return TimesheetEntry{
		ID:         uuid.NewString(),
		EngineerID: engineerID,
		Week:       week,
	}
}

// Duplicate returns a field-for-field copy with a fresh id. Date and
// week are copied verbatim, so a duplicate of an entry whose date sits
// outside its week is just as out of range as the source.
func (e TimesheetEntry) Duplicate() TimesheetEntry {
	dup := e
	dup.ID = uuid.NewString()
	dup.CreatedAt = time.Time{}
	dup.UpdatedAt = time.Time{}
	return dup
}
