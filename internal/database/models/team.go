package models

import (
	"encoding/json"
)

// Team represents an owning team in the application catalog
type Team struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:200"`
	Description string          `json:"description" gorm:"type:text"`
	Members     json.RawMessage `json:"members" gorm:"type:jsonb"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
