package models

import "time"

// Preference holds an engineer's sticky session state: theme, whether
// they left the landing screen, and the last selected week. Scalar
// fields are written through immediately on change; the entry
// collection itself is autosaved separately by the snapshot package.
type Preference struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	EngineerID   uint      `gorm:"uniqueIndex;not null" json:"-"`
	Theme        string    `gorm:"size:10;default:dark" json:"theme"`
	HasStarted   bool      `gorm:"default:false" json:"has_started"`
	SelectedWeek int       `gorm:"default:0" json:"selected_week"`
}
