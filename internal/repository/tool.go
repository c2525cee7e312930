package repository

import (
	"errors"

	"application-catalog-bff/internal/database/models"
	apperrors "application-catalog-bff/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ToolRepository handles database operations for catalog tools
type ToolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository
func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// rejection. The unique index is the authority on title uniqueness; the
// service-level pre-check only exists for friendlier error timing.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a new tool. A concurrent duplicate title surfaces as
// ErrToolTitleExists even when the pre-check passed.
func (r *ToolRepository) Create(tool *models.Tool) error {
	if err := r.db.Create(tool).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrToolTitleExists
		}
		return err
	}
	return nil
}

// CreateAll inserts a batch of tools in a single transaction. If any insert
// fails the whole batch is rolled back and nothing is persisted.
func (r *ToolRepository) CreateAll(tools []*models.Tool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, tool := range tools {
			if err := tx.Create(tool).Error; err != nil {
				if isUniqueViolation(err) {
					return apperrors.NewDuplicateTitleError(tool.Title)
				}
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a tool by ID
func (r *ToolRepository) GetByID(id uuid.UUID) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// GetByTitle retrieves a tool by its exact title (case-sensitive)
func (r *ToolRepository) GetByTitle(title string) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// List retrieves all tools matching the filter, ordered featured-first, then
// by sort order, then alphabetically by title. No pagination: the catalog is
// small and the UI renders it whole.
func (r *ToolRepository) List(filter ToolListFilter) ([]models.Tool, error) {
	query := r.db.Model(&models.Tool{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR category ILIKE ?", like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var tools []models.Tool
	err := query.
		Order("is_featured DESC").
		Order("sort_order ASC").
		Order("title ASC").
		Find(&tools).Error
	if err != nil {
		return nil, err
	}

	return tools, nil
}

// Update saves the full tool record
func (r *ToolRepository) Update(tool *models.Tool) error {
	if err := r.db.Save(tool).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrToolTitleExists
		}
		return err
	}
	return nil
}

// Delete removes a tool by ID
func (r *ToolRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tool{}, "id = ?", id).Error
}

// TitleExists checks if a tool title exists, optionally excluding one record
// (the record being updated)
func (r *ToolRepository) TitleExists(title string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Tool{}).Where("title = ?", title)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateLogo stores logo bytes and content type for a tool, overwriting any
// prior logo
func (r *ToolRepository) UpdateLogo(id uuid.UUID, data []byte, contentType string) error {
	result := r.db.Model(&models.Tool{}).Where("id = ?", id).Updates(map[string]interface{}{
		"logo_data":         data,
		"logo_content_type": contentType,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
