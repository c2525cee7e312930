package repository

import (
	"application-catalog-bff/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ToolListFilter narrows the tool listing; zero values mean "no filter"
type ToolListFilter struct {
	Search   string
	Category string
	Status   string
}

// ToolUsage is an aggregate row of access events per tool title
type ToolUsage struct {
	ToolTitle string `json:"tool_title"`
	Count     int64  `json:"count"`
}

// ToolRepositoryInterface defines the interface for tool repository operations
type ToolRepositoryInterface interface {
	Create(tool *models.Tool) error
	CreateAll(tools []*models.Tool) error
	GetByID(id uuid.UUID) (*models.Tool, error)
	GetByTitle(title string) (*models.Tool, error)
	List(filter ToolListFilter) ([]models.Tool, error)
	Update(tool *models.Tool) error
	Delete(id uuid.UUID) error
	TitleExists(title string, excludeID *uuid.UUID) (bool, error)
	UpdateLogo(id uuid.UUID, data []byte, contentType string) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	List() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	NameExists(name string, excludeID *uuid.UUID) (bool, error)
}

// ToolAccessRepositoryInterface defines the interface for access-event repository operations
type ToolAccessRepositoryInterface interface {
	Create(event *models.ToolAccess) error
	CountAll() (int64, error)
	CountByAction(action models.AccessAction) (int64, error)
	TopTools(limit int) ([]ToolUsage, error)
	Recent(limit int) ([]models.ToolAccess, error)
}
