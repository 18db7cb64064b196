package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobly/internal/apperrors"
	"jobly/internal/dtos"
	"jobly/internal/middleware"
	"jobly/internal/models"
	"jobly/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// List is GET /applications (admin only, gated in the router).
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Apply is POST /jobs/:id/apply. The applicant is always the authenticated
// identity; the body supplies only the state.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		renderError(c, apperrors.Unauthorized())
		return
	}
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	app, err := h.Applications.Create(c.Request.Context(), claims.Username, id, models.ApplicationState(req.State))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

func applicationKey(c *gin.Context) (string, int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return "", 0, apperrors.BadRequest("job id must be an integer")
	}
	return c.Param("username"), id, nil
}

// Update is PATCH /applications/:username/:id.
func (h *ApplicationHandler) Update(c *gin.Context) {
	username, id, err := applicationKey(c)
	if err != nil {
		renderError(c, err)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	app, err := h.Applications.Update(c.Request.Context(), username, id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

// Delete is DELETE /applications/:username/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	username, id, err := applicationKey(c)
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.Applications.Remove(c.Request.Context(), username, id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}
