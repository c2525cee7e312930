package testutils

import (
	"encoding/json"
	"time"

	"application-catalog-bff/internal/database/models"

	"github.com/google/uuid"
)

// ToolFactory provides methods to create test Tool data
type ToolFactory struct{}

// NewToolFactory creates a new ToolFactory
func NewToolFactory() *ToolFactory {
	return &ToolFactory{}
}

// Create creates a test Tool with default values. Titles embed part of the
// UUID so repeated calls satisfy the unique index.
func (f *ToolFactory) Create() *models.Tool {
	id := uuid.New()
	return &models.Tool{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:              "Test Tool " + id.String()[:8],
		Description:        "<p>A test tool for the catalog</p>",
		Category:           "Development",
		Tags:               json.RawMessage(`["testing"]`),
		OwnerTeams:         json.RawMessage(`[]`),
		Experts:            json.RawMessage(`[]`),
		DocumentationLinks: json.RawMessage(`[]`),
		Status:             models.ToolStatusActive,
	}
}

// WithTitle sets a custom title for the tool
func (f *ToolFactory) WithTitle(title string) *models.Tool {
	tool := f.Create()
	tool.Title = title
	return tool
}

// WithOrdering sets the listing-order fields for the tool
func (f *ToolFactory) WithOrdering(title string, featured bool, sortOrder int) *models.Tool {
	tool := f.Create()
	tool.Title = title
	tool.IsFeatured = featured
	tool.SortOrder = sortOrder
	return tool
}

// WithCategory sets a custom category for the tool
func (f *ToolFactory) WithCategory(category string) *models.Tool {
	tool := f.Create()
	tool.Category = category
	return tool
}

// WithStatus sets a custom status for the tool
func (f *ToolFactory) WithStatus(status models.ToolStatus) *models.Tool {
	tool := f.Create()
	tool.Status = status
	return tool
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team " + id.String()[:8],
		Description: "A test team",
		Members:     json.RawMessage(`[{"name":"Jane Doe","email":"jane.doe@test.com"}]`),
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// ToolAccessFactory provides methods to create test access events
type ToolAccessFactory struct{}

// NewToolAccessFactory creates a new ToolAccessFactory
func NewToolAccessFactory() *ToolAccessFactory {
	return &ToolAccessFactory{}
}

// Create creates a test access event with default values
func (f *ToolAccessFactory) Create() *models.ToolAccess {
	return &models.ToolAccess{
		ID:        uuid.New(),
		ToolID:    uuid.New(),
		ToolTitle: "Test Tool",
		Action:    models.AccessActionViewModal,
		UserEmail: "user@test.com",
		Timestamp: time.Now(),
	}
}

// For creates a test access event against a specific tool
func (f *ToolAccessFactory) For(toolID uuid.UUID, title string, action models.AccessAction) *models.ToolAccess {
	event := f.Create()
	event.ToolID = toolID
	event.ToolTitle = title
	event.Action = action
	return event
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Tool       *ToolFactory
	Team       *TeamFactory
	ToolAccess *ToolAccessFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tool:       NewToolFactory(),
		Team:       NewTeamFactory(),
		ToolAccess: NewToolAccessFactory(),
	}
}
