package repository

import (
	"application-catalog-bff/internal/database/models"

	"gorm.io/gorm"
)

// ToolAccessRepository handles database operations for access events.
// The table is append-only: there are no update or delete methods, and the
// aggregation queries below are recomputed on every call rather than
// maintained incrementally.
type ToolAccessRepository struct {
	db *gorm.DB
}

// NewToolAccessRepository creates a new access-event repository
func NewToolAccessRepository(db *gorm.DB) *ToolAccessRepository {
	return &ToolAccessRepository{db: db}
}

// Create appends a new access event
func (r *ToolAccessRepository) Create(event *models.ToolAccess) error {
	return r.db.Create(event).Error
}

// CountAll returns the total number of recorded events
func (r *ToolAccessRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.ToolAccess{}).Count(&count).Error
	return count, err
}

// CountByAction returns the number of events with the given action
func (r *ToolAccessRepository) CountByAction(action models.AccessAction) (int64, error) {
	var count int64
	err := r.db.Model(&models.ToolAccess{}).Where("action = ?", action).Count(&count).Error
	return count, err
}

// TopTools returns the most-accessed tool titles by event count. Ties are
// broken by title so the ranking is stable between calls.
func (r *ToolAccessRepository) TopTools(limit int) ([]ToolUsage, error) {
	var usages []ToolUsage
	err := r.db.Model(&models.ToolAccess{}).
		Select("tool_title, COUNT(id) AS count").
		Group("tool_title").
		Order("count DESC").
		Order("tool_title ASC").
		Limit(limit).
		Scan(&usages).Error
	if err != nil {
		return nil, err
	}
	return usages, nil
}

// Recent returns the newest events, most recent first
func (r *ToolAccessRepository) Recent(limit int) ([]models.ToolAccess, error) {
	var events []models.ToolAccess
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
