package repository

import (
	"application-catalog-bff/internal/database/models"
	apperrors "application-catalog-bff/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrTeamNameExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its exact name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams ordered by name
func (r *TeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update saves the full team record
func (r *TeamRepository) Update(team *models.Team) error {
	if err := r.db.Save(team).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrTeamNameExists
		}
		return err
	}
	return nil
}

// Delete removes a team by ID
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// NameExists checks if a team name exists, optionally excluding one record
func (r *TeamRepository) NameExists(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Team{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
