package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobly/internal/apperrors"
	"jobly/internal/dtos"
	"jobly/internal/filter"
	"jobly/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

func jobID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.BadRequest("job id must be an integer")
	}
	return id, nil
}

// List is GET /jobs, with in-memory query-string filtering.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	jobs, err = filter.Jobs(c.Request.URL.Query(), jobs)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Create is POST /jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	job, err := h.Jobs.Create(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// Get is GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	job, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Update is PATCH /jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	job, err := h.Jobs.Update(c.Request.Context(), id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete is DELETE /jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.Jobs.Remove(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// Match is GET /jobs/match/:username — jobs sharing a technology with the
// user.
func (h *JobHandler) Match(c *gin.Context) {
	jobs, err := h.Jobs.Match(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
