package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessAction is the kind of interaction recorded for a tool
type AccessAction string

const (
	AccessActionOpenTool  AccessAction = "open_tool"
	AccessActionViewModal AccessAction = "view_modal"
)

// ToolAccess is an append-only record of a user viewing or opening a tool.
// ToolID is deliberately not a foreign key and ToolTitle is a denormalized
// snapshot, so events survive tool renames and deletions. Rows are never
// updated or deleted through the API.
type ToolAccess struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ToolID    uuid.UUID    `json:"tool_id" gorm:"type:uuid;not null;index"`
	ToolTitle string       `json:"tool_title" gorm:"not null;size:200"`
	Action    AccessAction `json:"action" gorm:"type:varchar(50);not null"`
	UserEmail string       `json:"user_email" gorm:"size:200"`
	Timestamp time.Time    `json:"timestamp" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for ToolAccess
func (ToolAccess) TableName() string {
	return "tool_access"
}

// BeforeCreate sets the UUID if not already set
func (e *ToolAccess) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
