package dtos

// CompanyCreateRequest is the POST /companies payload.
type CompanyCreateRequest struct {
	Handle       string `json:"handle" binding:"required"`
	Name         string `json:"name" binding:"required"`
	NumEmployees int    `json:"num_employees" binding:"omitempty,gte=0"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url" binding:"omitempty,url"`
}
