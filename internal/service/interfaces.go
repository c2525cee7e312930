package service

import (
	"application-catalog-bff/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ToolServiceInterface defines the interface for tool service
type ToolServiceInterface interface {
	List(filter repository.ToolListFilter) ([]ToolResponse, error)
	Create(req *ToolRequest) (*ToolResponse, error)
	BulkCreate(reqs []ToolRequest) ([]ToolResponse, error)
	GetByID(id uuid.UUID) (*ToolResponse, error)
	Update(id uuid.UUID, req *ToolRequest) (*ToolResponse, error)
	UpdateByTitle(title string, req *ToolRequest) (*ToolResponse, error)
	Delete(id uuid.UUID) error
	UploadLogo(id uuid.UUID, data []byte, contentType string) error
	ImportLogo(id uuid.UUID, logoURL string) error
	GetLogo(id uuid.UUID) ([]byte, string, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	List() ([]TeamResponse, error)
	Create(req *TeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	Update(id uuid.UUID, req *TeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
}

// AnalyticsServiceInterface defines the interface for the analytics service
type AnalyticsServiceInterface interface {
	RecordAccess(req *ToolAccessRequest) (*ToolAccessResponse, error)
	Summary() (*AnalyticsSummary, error)
}
