package models

import (
	"encoding/json"
	"time"
)

// ToolStatus represents the lifecycle status of a catalog tool
type ToolStatus string

const (
	ToolStatusActive     ToolStatus = "Active"
	ToolStatusDeprecated ToolStatus = "Deprecated"
	ToolStatusPlanned    ToolStatus = "Planned"
)

// Tool represents an onboarding tool in the application catalog.
// Structured sub-lists (tags, experts, documentation links, owning teams)
// are stored as jsonb; the service layer owns their typed shape.
type Tool struct {
	BaseModel
	Title              string          `json:"title" gorm:"uniqueIndex;not null;size:200"`
	Description        string          `json:"description" gorm:"type:text"`
	Category           string          `json:"category" gorm:"not null;size:100"`
	Tags               json.RawMessage `json:"tags" gorm:"type:jsonb"`
	OwnerTeams         json.RawMessage `json:"owner_teams" gorm:"type:jsonb"`
	AccessOwnerName    string          `json:"access_owner_name" gorm:"size:200"`
	AccessOwnerEmail   string          `json:"access_owner_email" gorm:"size:200"`
	AccessProcess      string          `json:"access_process" gorm:"type:text"`
	Experts            json.RawMessage `json:"experts" gorm:"type:jsonb"`
	DocumentationLinks json.RawMessage `json:"documentation_links" gorm:"type:jsonb"`
	ToolURL            string          `json:"tool_url" gorm:"size:500"`
	Status             ToolStatus      `json:"status" gorm:"type:varchar(50);not null;default:'Active'"`
	SortOrder          int             `json:"sort_order" gorm:"default:0"`
	IsFeatured         bool            `json:"is_featured" gorm:"default:false"`
	LastReviewed       *time.Time      `json:"last_reviewed" gorm:"type:date"`
	ReviewedBy         string          `json:"reviewed_by" gorm:"size:200"`
	LogoData           []byte          `json:"-" gorm:"type:bytea"`
	LogoContentType    string          `json:"-" gorm:"size:100"`
}

// TableName returns the table name for Tool
func (Tool) TableName() string {
	return "onboarding_tools"
}

// HasLogo reports whether a logo blob is stored for the tool
func (t *Tool) HasLogo() bool {
	return len(t.LogoData) > 0
}
