package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEngineer Role = "ENGINEER"
)

type Engineer struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`
	Username           string           `gorm:"uniqueIndex;not null;size:100" json:"username"`
	FullName           string           `gorm:"not null;size:200" json:"full_name"`
	PasswordHash       string           `gorm:"not null" json:"-"`
	Role               Role             `gorm:"not null;size:20" json:"role"`
	MustChangePassword bool             `gorm:"default:true" json:"must_change_password"`
	Entries            []TimesheetEntry `gorm:"foreignKey:EngineerID" json:"entries,omitempty"`
}

// DisplayName is the name used in exports and email drafts.
func (e *Engineer) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	return e.Username
}

func (e *Engineer) IsAdmin() bool {
	return e.Role == RoleAdmin
}

func (e *Engineer) CanManageEntriesFor(engineerID uint) bool {
	if e.IsAdmin() {
		return true
	}
	return e.ID == engineerID
}

func (e *Engineer) CanViewAllEntries() bool {
	return e.IsAdmin()
}

func (e *Engineer) CanManageEngineers() bool {
	return e.IsAdmin()
}
