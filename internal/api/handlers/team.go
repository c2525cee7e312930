package handlers

import (
	"errors"
	"net/http"

	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	detailTeamNotFound   = "Team not found."
	detailTeamNameUnique = "Team name must be unique."
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailTeamNotFound})
	case errors.Is(err, apperrors.ErrTeamNameExists):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detailTeamNameUnique})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List all teams ordered by name
// @Tags teams
// @Accept json
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams ordered by name"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List()
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a new team with a unique name
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team payload"
// @Success 200 {object} service.TeamResponse "Created team"
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate name"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailTeamNotFound})
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Replace every writable field of the team with the payload
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.TeamRequest true "Full team payload"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate name"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailTeamNotFound})
		return
	}

	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} StatusResponse "Deletion confirmation"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailTeamNotFound})
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}
