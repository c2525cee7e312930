package service

import (
	"fmt"
	"strings"
	"time"

	"application-catalog-bff/internal/database/models"
	"application-catalog-bff/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	topToolsLimit       = 10
	recentActivityLimit = 20
)

// AnalyticsService records access events and computes the usage summary.
// Events are immutable and grow without bound; there is no retention policy
// here, which is a capacity-planning concern for the deployment.
type AnalyticsService struct {
	repo      repository.ToolAccessRepositoryInterface
	validator *validator.Validate
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.ToolAccessRepositoryInterface, validate *validator.Validate) *AnalyticsService {
	return &AnalyticsService{
		repo:      repo,
		validator: validate,
	}
}

// ToolAccessRequest records that a user viewed or opened a tool. ToolID is
// not checked against the tool table: the title snapshot is what keeps the
// event meaningful after the tool is renamed or deleted.
type ToolAccessRequest struct {
	ToolID    uuid.UUID           `json:"tool_id" validate:"required"`
	ToolTitle string              `json:"tool_title" validate:"required"`
	Action    models.AccessAction `json:"action" validate:"required,oneof=open_tool view_modal"`
	UserEmail string              `json:"user_email" validate:"omitempty,email"`
}

// ToolAccessResponse represents a recorded access event
type ToolAccessResponse struct {
	ID        uuid.UUID           `json:"id"`
	ToolID    uuid.UUID           `json:"tool_id"`
	ToolTitle string              `json:"tool_title"`
	Action    models.AccessAction `json:"action"`
	UserEmail string              `json:"user_email,omitempty"`
	Timestamp string              `json:"timestamp"`
}

// AnalyticsSummary is the aggregate view over the whole event table
type AnalyticsSummary struct {
	TotalInteractions int64                  `json:"total_interactions"`
	TotalViews        int64                  `json:"total_views"`
	TotalOpens        int64                  `json:"total_opens"`
	TopTools          []repository.ToolUsage `json:"top_tools"`
	RecentActivity    []ToolAccessResponse   `json:"recent_activity"`
}

// RecordAccess appends an immutable access event with a server timestamp
func (s *AnalyticsService) RecordAccess(req *ToolAccessRequest) (*ToolAccessResponse, error) {
	req.ToolTitle = strings.TrimSpace(req.ToolTitle)
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	event := &models.ToolAccess{
		ToolID:    req.ToolID,
		ToolTitle: req.ToolTitle,
		Action:    req.Action,
		UserEmail: req.UserEmail,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to record access event: %w", err)
	}

	return s.toResponse(event), nil
}

// Summary recomputes the aggregate counters, the top-10 ranking and the 20
// most recent events over the full event table
func (s *AnalyticsService) Summary() (*AnalyticsSummary, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	views, err := s.repo.CountByAction(models.AccessActionViewModal)
	if err != nil {
		return nil, fmt.Errorf("failed to count view events: %w", err)
	}

	opens, err := s.repo.CountByAction(models.AccessActionOpenTool)
	if err != nil {
		return nil, fmt.Errorf("failed to count open events: %w", err)
	}

	topTools, err := s.repo.TopTools(topToolsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank tools: %w", err)
	}
	if topTools == nil {
		topTools = []repository.ToolUsage{}
	}

	recent, err := s.repo.Recent(recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent events: %w", err)
	}

	recentActivity := make([]ToolAccessResponse, 0, len(recent))
	for i := range recent {
		recentActivity = append(recentActivity, *s.toResponse(&recent[i]))
	}

	return &AnalyticsSummary{
		TotalInteractions: total,
		TotalViews:        views,
		TotalOpens:        opens,
		TopTools:          topTools,
		RecentActivity:    recentActivity,
	}, nil
}

func (s *AnalyticsService) toResponse(event *models.ToolAccess) *ToolAccessResponse {
	return &ToolAccessResponse{
		ID:        event.ID,
		ToolID:    event.ToolID,
		ToolTitle: event.ToolTitle,
		Action:    event.Action,
		UserEmail: event.UserEmail,
		Timestamp: event.Timestamp.Format(time.RFC3339),
	}
}
