package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/repository"
	"application-catalog-bff/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON error envelope returned to the UI client
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusResponse is the JSON envelope for operations that only report an outcome
type StatusResponse struct {
	Status string `json:"status"`
}

const (
	detailToolNotFound = "Tool not found."
	detailTitleUnique  = "Title must be unique."
	detailLogoNotImage = "Logo must be an image file."
	detailLogoNotFound = "Logo not found."
)

// ToolHandler handles HTTP requests for tool operations
type ToolHandler struct {
	toolService service.ToolServiceInterface
}

// NewToolHandler creates a new tool handler
func NewToolHandler(toolService service.ToolServiceInterface) *ToolHandler {
	return &ToolHandler{
		toolService: toolService,
	}
}

// respondToolError translates service errors into the HTTP contract
func respondToolError(c *gin.Context, err error) {
	var dup *apperrors.DuplicateTitleError
	switch {
	case errors.Is(err, apperrors.ErrToolNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailToolNotFound})
	case errors.Is(err, apperrors.ErrToolTitleExists):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detailTitleUnique})
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Title already exists: " + dup.Title})
	case apperrors.IsValidation(err), apperrors.IsExternalFetch(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}
}

// ListTools handles GET /tools
// @Summary List catalog tools
// @Description List tools filtered by search text, category and status, ordered featured-first
// @Tags tools
// @Accept json
// @Produce json
// @Param search query string false "Substring match on title or category"
// @Param category query string false "Exact category filter"
// @Param status query string false "Exact status filter" Enums(Active, Deprecated, Planned)
// @Success 200 {array} service.ToolResponse "Ordered list of tools"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tools [get]
func (h *ToolHandler) ListTools(c *gin.Context) {
	filter := repository.ToolListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	tools, err := h.toolService.List(filter)
	if err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, tools)
}

// CreateTool handles POST /tools
// @Summary Create a tool
// @Description Create a new catalog tool with a globally unique title
// @Tags tools
// @Accept json
// @Produce json
// @Param tool body service.ToolRequest true "Tool payload"
// @Success 200 {object} service.ToolResponse "Created tool"
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate title"
// @Router /tools [post]
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req service.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	tool, err := h.toolService.Create(&req)
	if err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, tool)
}

// BulkCreateRequest wraps the payload for POST /tools/bulk
type BulkCreateRequest struct {
	Tools []service.ToolRequest `json:"tools"`
}

// BulkCreateTools handles POST /tools/bulk
// @Summary Bulk-create tools
// @Description Create a batch of tools atomically; any invalid or duplicate entry rejects the whole batch
// @Tags tools
// @Accept json
// @Produce json
// @Param payload body BulkCreateRequest true "Batch payload"
// @Success 200 {array} service.ToolResponse "Created tools"
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate title"
// @Router /tools/bulk [post]
func (h *ToolHandler) BulkCreateTools(c *gin.Context) {
	var req BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	tools, err := h.toolService.BulkCreate(req.Tools)
	if err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, tools)
}

// GetTool handles GET /tools/:id
// @Summary Get tool by ID
// @Tags tools
// @Accept json
// @Produce json
// @Param id path string true "Tool ID (UUID)"
// @Success 200 {object} service.ToolResponse "Tool"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /tools/{id} [get]
func (h *ToolHandler) GetTool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailToolNotFound})
		return
	}

	tool, err := h.toolService.GetByID(id)
	if err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, tool)
}

// UpdateTool handles PUT /tools/:id
// @Summary Update a tool
// @Description Replace every writable field of the tool with the payload
// @Tags tools
// @Accept json
// @Produce json
// @Param id path string true "Tool ID (UUID)"
// @Param tool body service.ToolRequest true "Full tool payload"
// @Success 200 {object} service.ToolResponse "Updated tool"
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate title"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /tools/{id} [put]
func (h *ToolHandler) UpdateTool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailToolNotFound})
		return
	}

	var req service.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	tool, err := h.toolService.Update(id, &req)
	if err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, tool)
}

// UpdateToolByTitle handles PUT /tools/by-title/:title
// @Summary Update a tool by its current title
// @Tags tools
// @Accept json
// @Produce json
// @Param title path string true "Current tool title"
// @Param tool body service.ToolRequest true "Full tool payload"
// @Success 200 {object} service.ToolResponse "Updated tool"
// @Failure 400 {object} ErrorResponse "Validation failure or duplicate title"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /tools/by-title/{title} [put]
func (h *ToolHandler) UpdateToolByTitle(c *gin.Context) {
	title := c.Param("title")

	var req service.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	tool, err := h.toolService.UpdateByTitle(title, &req)
	if err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, tool)
}

// DeleteTool handles DELETE /tools/:id
// @Summary Delete a tool
// @Description Hard-delete a tool; a repeated delete returns 404
// @Tags tools
// @Accept json
// @Produce json
// @Param id path string true "Tool ID (UUID)"
// @Success 200 {object} StatusResponse "Deletion confirmation"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /tools/{id} [delete]
func (h *ToolHandler) DeleteTool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailToolNotFound})
		return
	}

	if err := h.toolService.Delete(id); err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

// UploadLogo handles POST /tools/:id/logo/upload
// @Summary Upload a tool logo
// @Description Store a logo image uploaded as a multipart file, overwriting any prior logo
// @Tags tools
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Tool ID (UUID)"
// @Param file formData file true "Logo image file"
// @Success 200 {object} StatusResponse "Upload confirmation"
// @Failure 400 {object} ErrorResponse "File is not an image"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /tools/{id}/logo/upload [post]
func (h *ToolHandler) UploadLogo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailToolNotFound})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detailLogoNotImage})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detailLogoNotImage})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detailLogoNotImage})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.toolService.UploadLogo(id, data, contentType); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detailLogoNotImage})
			return
		}
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "uploaded"})
}

// ImportLogo handles POST /tools/:id/logo/import
// @Summary Import a tool logo from a URL
// @Description Fetch the URL once with a bounded timeout and store the image, overwriting any prior logo
// @Tags tools
// @Accept json
// @Produce json
// @Param id path string true "Tool ID (UUID)"
// @Param url query string true "Logo image URL"
// @Success 200 {object} StatusResponse "Import confirmation"
// @Failure 400 {object} ErrorResponse "Fetch failed or URL is not an image"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /tools/{id}/logo/import [post]
func (h *ToolHandler) ImportLogo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailToolNotFound})
		return
	}

	logoURL := c.Query("url")
	if logoURL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "url parameter is required"})
		return
	}

	if err := h.toolService.ImportLogo(id, logoURL); err != nil {
		respondToolError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "imported"})
}

// GetLogo handles GET /logos/:id
// @Summary Get a tool logo
// @Description Return the stored logo bytes with their content type
// @Tags tools
// @Produce png
// @Param id path string true "Tool ID (UUID)"
// @Success 200 {file} binary "Logo image bytes"
// @Failure 404 {object} ErrorResponse "Logo not found"
// @Router /logos/{id} [get]
func (h *ToolHandler) GetLogo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailLogoNotFound})
		return
	}

	data, contentType, err := h.toolService.GetLogo(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLogoNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailLogoNotFound})
			return
		}
		respondToolError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
