package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"application-catalog-bff/internal/database/models"
	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/logger"
	"application-catalog-bff/internal/repository"
	"application-catalog-bff/internal/sanitize"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ToolService handles business logic for catalog tools
type ToolService struct {
	repo       repository.ToolRepositoryInterface
	validator  *validator.Validate
	httpClient *http.Client
	log        *logger.Logger
}

// NewToolService creates a new tool service. fetchTimeout bounds the logo
// import request; the fetch runs on a plain client so no transaction or
// connection is held while waiting on the network.
func NewToolService(repo repository.ToolRepositoryInterface, validate *validator.Validate, fetchTimeout time.Duration) *ToolService {
	return &ToolService{
		repo:      repo,
		validator: validate,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		log: logger.New(),
	}
}

// Expert is a named contact for a tool
type Expert struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Title    string `json:"title,omitempty"`
	IsBackup bool   `json:"is_backup"`
}

// DocumentationLink points to external documentation for a tool
type DocumentationLink struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Type  string `json:"type,omitempty"`
}

// ToolRequest is the full-replace payload for creating or updating a tool.
// Every writable field is present; an update overwrites the stored record
// field by field.
type ToolRequest struct {
	Title              string              `json:"title" validate:"required,max=200"`
	Description        string              `json:"description"`
	Category           string              `json:"category" validate:"required,max=100"`
	Tags               []string            `json:"tags"`
	OwnerTeams         []uuid.UUID         `json:"owner_teams"`
	AccessOwnerName    string              `json:"access_owner_name"`
	AccessOwnerEmail   string              `json:"access_owner_email" validate:"omitempty,email"`
	AccessProcess      string              `json:"access_process"`
	Experts            []Expert            `json:"experts" validate:"dive"`
	DocumentationLinks []DocumentationLink `json:"documentation_links" validate:"dive"`
	ToolURL            string              `json:"tool_url" validate:"omitempty,url"`
	Status             models.ToolStatus   `json:"status" validate:"omitempty,oneof=Active Deprecated Planned"`
	SortOrder          int                 `json:"sort_order"`
	IsFeatured         bool                `json:"is_featured"`
	LastReviewed       string              `json:"last_reviewed" validate:"omitempty,datetime=2006-01-02"`
	ReviewedBy         string              `json:"reviewed_by"`
}

// ToolResponse represents the response for tool operations
type ToolResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Category           string              `json:"category"`
	Tags               []string            `json:"tags"`
	OwnerTeams         []uuid.UUID         `json:"owner_teams"`
	AccessOwnerName    string              `json:"access_owner_name"`
	AccessOwnerEmail   string              `json:"access_owner_email"`
	AccessProcess      string              `json:"access_process"`
	Experts            []Expert            `json:"experts"`
	DocumentationLinks []DocumentationLink `json:"documentation_links"`
	ToolURL            string              `json:"tool_url"`
	Status             models.ToolStatus   `json:"status"`
	SortOrder          int                 `json:"sort_order"`
	IsFeatured         bool                `json:"is_featured"`
	LastReviewed       string              `json:"last_reviewed,omitempty"`
	ReviewedBy         string              `json:"reviewed_by"`
	HasLogo            bool                `json:"has_logo"`
	CreatedAt          string              `json:"created_at"`
	UpdatedAt          string              `json:"updated_at"`
}

// normalize trims required text, defaults the status, replaces nil sub-lists
// with empty ones and sanitizes the rich-text description. Runs before
// validation so that whitespace-only required fields fail as empty.
func (s *ToolService) normalize(req *ToolRequest) {
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = sanitize.RichText(req.Description)

	if req.Status == "" {
		req.Status = models.ToolStatusActive
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.OwnerTeams == nil {
		req.OwnerTeams = []uuid.UUID{}
	}
	if req.Experts == nil {
		req.Experts = []Expert{}
	}
	if req.DocumentationLinks == nil {
		req.DocumentationLinks = []DocumentationLink{}
	}
}

// applyRequest maps a validated payload onto a tool model, field by field.
// Full-replace semantics: every writable field is overwritten.
func applyRequest(tool *models.Tool, req *ToolRequest) error {
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	ownerTeams, err := json.Marshal(req.OwnerTeams)
	if err != nil {
		return fmt.Errorf("failed to marshal owner teams: %w", err)
	}
	experts, err := json.Marshal(req.Experts)
	if err != nil {
		return fmt.Errorf("failed to marshal experts: %w", err)
	}
	docLinks, err := json.Marshal(req.DocumentationLinks)
	if err != nil {
		return fmt.Errorf("failed to marshal documentation links: %w", err)
	}

	var lastReviewed *time.Time
	if req.LastReviewed != "" {
		parsed, err := time.Parse(dateLayout, req.LastReviewed)
		if err != nil {
			return apperrors.NewValidationError("last_reviewed", "invalid_date")
		}
		lastReviewed = &parsed
	}

	tool.Title = req.Title
	tool.Description = req.Description
	tool.Category = req.Category
	tool.Tags = tags
	tool.OwnerTeams = ownerTeams
	tool.AccessOwnerName = req.AccessOwnerName
	tool.AccessOwnerEmail = req.AccessOwnerEmail
	tool.AccessProcess = req.AccessProcess
	tool.Experts = experts
	tool.DocumentationLinks = docLinks
	tool.ToolURL = req.ToolURL
	tool.Status = req.Status
	tool.SortOrder = req.SortOrder
	tool.IsFeatured = req.IsFeatured
	tool.LastReviewed = lastReviewed
	tool.ReviewedBy = req.ReviewedBy

	return nil
}

// validateRequest normalizes and validates a payload
func (s *ToolService) validateRequest(req *ToolRequest) error {
	s.normalize(req)
	if err := s.validator.Struct(req); err != nil {
		return asValidationError(err)
	}
	return nil
}

// List retrieves all tools matching the filter
func (s *ToolService) List(filter repository.ToolListFilter) ([]ToolResponse, error) {
	tools, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	responses := make([]ToolResponse, 0, len(tools))
	for i := range tools {
		responses = append(responses, *s.toResponse(&tools[i]))
	}
	return responses, nil
}

// Create creates a new tool. The title pre-check gives a friendly error
// before the insert; the unique index remains the final arbiter under
// concurrent submission.
func (s *ToolService) Create(req *ToolRequest) (*ToolResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.TitleExists(req.Title, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tool title: %w", err)
	}
	if exists {
		return nil, apperrors.ErrToolTitleExists
	}

	tool := &models.Tool{}
	if err := applyRequest(tool, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(tool); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	return s.toResponse(tool), nil
}

// BulkCreate validates and creates a batch of tools atomically. Titles are
// checked against existing records and against earlier elements of the same
// batch; any failure rejects the whole batch.
func (s *ToolService) BulkCreate(reqs []ToolRequest) ([]ToolResponse, error) {
	seen := make(map[string]struct{}, len(reqs))
	tools := make([]*models.Tool, 0, len(reqs))

	for i := range reqs {
		req := &reqs[i]
		if err := s.validateRequest(req); err != nil {
			return nil, err
		}

		if _, dup := seen[req.Title]; dup {
			return nil, apperrors.NewDuplicateTitleError(req.Title)
		}
		exists, err := s.repo.TitleExists(req.Title, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing tool title: %w", err)
		}
		if exists {
			return nil, apperrors.NewDuplicateTitleError(req.Title)
		}
		seen[req.Title] = struct{}{}

		tool := &models.Tool{}
		if err := applyRequest(tool, req); err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}

	if err := s.repo.CreateAll(tools); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create tools: %w", err)
	}

	responses := make([]ToolResponse, 0, len(tools))
	for _, tool := range tools {
		responses = append(responses, *s.toResponse(tool))
	}
	return responses, nil
}

// GetByID retrieves a tool by ID
func (s *ToolService) GetByID(id uuid.UUID) (*ToolResponse, error) {
	tool, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return s.toResponse(tool), nil
}

// Update replaces a tool record with the payload
func (s *ToolService) Update(id uuid.UUID, req *ToolRequest) (*ToolResponse, error) {
	tool, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	return s.update(tool, req)
}

// UpdateByTitle replaces the tool identified by its current title
func (s *ToolService) UpdateByTitle(title string, req *ToolRequest) (*ToolResponse, error) {
	tool, err := s.repo.GetByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	return s.update(tool, req)
}

func (s *ToolService) update(tool *models.Tool, req *ToolRequest) (*ToolResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// Uniqueness check against all other records, excluding the one updated
	exists, err := s.repo.TitleExists(req.Title, &tool.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tool title: %w", err)
	}
	if exists {
		return nil, apperrors.ErrToolTitleExists
	}

	if err := applyRequest(tool, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(tool); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}

	return s.toResponse(tool), nil
}

// Delete removes a tool. Deleting an unknown id reports not-found rather than
// silently succeeding, so a repeated delete surfaces as a 404 to the caller.
func (s *ToolService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrToolNotFound
		}
		return fmt.Errorf("failed to get tool: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

// UploadLogo stores an uploaded logo for a tool, overwriting any prior logo
func (s *ToolService) UploadLogo(id uuid.UUID, data []byte, contentType string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrToolNotFound
		}
		return fmt.Errorf("failed to get tool: %w", err)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return apperrors.ErrLogoNotImage
	}

	if err := s.repo.UpdateLogo(id, data, contentType); err != nil {
		return fmt.Errorf("failed to store logo: %w", err)
	}
	return nil
}

// ImportLogo fetches a logo from an external URL and stores it. The fetch is
// attempted exactly once with a bounded timeout; on any failure the
// previously stored logo is left untouched.
func (s *ToolService) ImportLogo(id uuid.UUID, logoURL string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrToolNotFound
		}
		return fmt.Errorf("failed to get tool: %w", err)
	}

	resp, err := s.httpClient.Get(logoURL)
	if err != nil {
		s.log.WithField("url", logoURL).Warnf("logo fetch failed: %v", err)
		return apperrors.NewExternalFetchError("Unable to fetch logo URL.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewExternalFetchError("Unable to fetch logo URL.")
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return apperrors.NewExternalFetchError("Logo URL must be an image.")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewExternalFetchError("Unable to fetch logo URL.")
	}

	if err := s.repo.UpdateLogo(id, data, contentType); err != nil {
		return fmt.Errorf("failed to store logo: %w", err)
	}
	return nil
}

// GetLogo returns the stored logo bytes and content type for a tool
func (s *ToolService) GetLogo(id uuid.UUID) ([]byte, string, error) {
	tool, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrLogoNotFound
		}
		return nil, "", fmt.Errorf("failed to get tool: %w", err)
	}

	if !tool.HasLogo() {
		return nil, "", apperrors.ErrLogoNotFound
	}

	contentType := tool.LogoContentType
	if contentType == "" {
		contentType = "image/png"
	}
	return tool.LogoData, contentType, nil
}

// toResponse converts a tool model to a response DTO
func (s *ToolService) toResponse(tool *models.Tool) *ToolResponse {
	resp := &ToolResponse{
		ID:                 tool.ID,
		Title:              tool.Title,
		Description:        tool.Description,
		Category:           tool.Category,
		Tags:               []string{},
		OwnerTeams:         []uuid.UUID{},
		AccessOwnerName:    tool.AccessOwnerName,
		AccessOwnerEmail:   tool.AccessOwnerEmail,
		AccessProcess:      tool.AccessProcess,
		Experts:            []Expert{},
		DocumentationLinks: []DocumentationLink{},
		ToolURL:            tool.ToolURL,
		Status:             tool.Status,
		SortOrder:          tool.SortOrder,
		IsFeatured:         tool.IsFeatured,
		ReviewedBy:         tool.ReviewedBy,
		HasLogo:            tool.HasLogo(),
		CreatedAt:          tool.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          tool.UpdatedAt.Format(time.RFC3339),
	}

	if len(tool.Tags) > 0 {
		_ = json.Unmarshal(tool.Tags, &resp.Tags)
	}
	if len(tool.OwnerTeams) > 0 {
		_ = json.Unmarshal(tool.OwnerTeams, &resp.OwnerTeams)
	}
	if len(tool.Experts) > 0 {
		_ = json.Unmarshal(tool.Experts, &resp.Experts)
	}
	if len(tool.DocumentationLinks) > 0 {
		_ = json.Unmarshal(tool.DocumentationLinks, &resp.DocumentationLinks)
	}
	if tool.LastReviewed != nil {
		resp.LastReviewed = tool.LastReviewed.Format(dateLayout)
	}

	return resp
}
