package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobly/internal/apperrors"
	"jobly/internal/dtos"
	"jobly/internal/filter"
	"jobly/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// List is GET /companies. Query-string filters are applied in memory over
// the fetched list.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Companies.All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	companies, err = filter.Companies(c.Request.URL.Query(), companies)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Create is POST /companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	company, err := h.Companies.Create(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// Get is GET /companies/:handle.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.Companies.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Update is PATCH /companies/:handle. The body is an arbitrary subset of
// updatable columns.
func (h *CompanyHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	company, err := h.Companies.Update(c.Request.Context(), c.Param("handle"), fields)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Delete is DELETE /companies/:handle.
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.Companies.Remove(c.Request.Context(), c.Param("handle")); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
