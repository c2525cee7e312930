package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"application-catalog-bff/internal/database/models"
	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validate *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validate,
	}
}

// TeamMember is a member entry on a team
type TeamMember struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title,omitempty"`
}

// TeamRequest is the full-replace payload for creating or updating a team
type TeamRequest struct {
	Name        string       `json:"name" validate:"required,max=200"`
	Description string       `json:"description"`
	Members     []TeamMember `json:"members" validate:"dive"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Members     []TeamMember `json:"members"`
}

func (s *TeamService) validateRequest(req *TeamRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Members == nil {
		req.Members = []TeamMember{}
	}
	if err := s.validator.Struct(req); err != nil {
		return asValidationError(err)
	}
	return nil
}

// applyTeamRequest maps a validated payload onto a team model, field by field
func applyTeamRequest(team *models.Team, req *TeamRequest) error {
	members, err := json.Marshal(req.Members)
	if err != nil {
		return fmt.Errorf("failed to marshal members: %w", err)
	}

	team.Name = req.Name
	team.Description = req.Description
	team.Members = members
	return nil
}

// List retrieves all teams ordered by name
func (s *TeamService) List() ([]TeamResponse, error) {
	teams, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *s.toResponse(&teams[i]))
	}
	return responses, nil
}

// Create creates a new team
func (s *TeamService) Create(req *TeamRequest) (*TeamResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamNameExists
	}

	team := &models.Team{}
	if err := applyTeamRequest(team, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(team); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// Update replaces a team record with the payload
func (s *TeamService) Update(id uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.NameExists(req.Name, &team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamNameExists
	}

	if err := applyTeamRequest(team, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(team); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete removes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// toResponse converts a team model to a response DTO
func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Members:     []TeamMember{},
	}
	if len(team.Members) > 0 {
		_ = json.Unmarshal(team.Members, &resp.Members)
	}
	return resp
}
