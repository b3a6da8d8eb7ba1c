package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"femaqua-be/internal/apperrors"
	"femaqua-be/internal/metrics"
	"femaqua-be/internal/middleware"
	"femaqua-be/internal/models"
	"femaqua-be/internal/service"
)

type ToolController struct {
	toolService service.ToolService
	metrics     *metrics.Metrics
}

func NewToolController(toolService service.ToolService, m *metrics.Metrics) *ToolController {
	return &ToolController{
		toolService: toolService,
		metrics:     m,
	}
}

// ListTools handles GET /v1/tools?tag=
func (tc *ToolController) ListTools(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tools, err := tc.toolService.List(c.Request.Context(), userID, c.Query("tag"))
	tc.metrics.ToolOperation("list", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewToolResponses(tools))
}

// CreateTool handles POST /v1/tools
func (tc *ToolController) CreateTool(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateToolRequest
	if !bindJSON(c, &req) {
		return
	}

	tool, err := tc.toolService.Create(c.Request.Context(), userID, req.Title, req.Link, req.Description, req.Tags)
	tc.metrics.ToolOperation("create", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewToolResponse(tool))
}

// GetTool handles GET /v1/tools/:id
func (tc *ToolController) GetTool(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	toolID, ok := toolIDParam(c)
	if !ok {
		return
	}

	tool, err := tc.toolService.Get(c.Request.Context(), userID, toolID)
	tc.metrics.ToolOperation("get", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewToolResponse(tool))
}

// UpdateTool handles PUT /v1/tools/:id
func (tc *ToolController) UpdateTool(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	toolID, ok := toolIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateToolRequest
	if !bindJSON(c, &req) {
		return
	}

	tool, err := tc.toolService.Update(c.Request.Context(), userID, toolID, req.ToUpdate())
	tc.metrics.ToolOperation("update", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewToolResponse(tool))
}

// DeleteTool handles DELETE /v1/tools/:id
func (tc *ToolController) DeleteTool(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	toolID, ok := toolIDParam(c)
	if !ok {
		return
	}

	err := tc.toolService.Delete(c.Request.Context(), userID, toolID)
	tc.metrics.ToolOperation("delete", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Tool deleted."})
}

// currentUserID reads the user set by AuthMiddleware
func currentUserID(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthenticated)
		return "", false
	}
	return user.ID, true
}

// toolIDParam parses :id. Anything that isn't a positive integer can't name
// a tool, so it is reported as not found.
func toolIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, apperrors.ErrToolNotFound)
		return 0, false
	}
	return id, true
}
