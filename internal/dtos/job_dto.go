package dtos

// JobCreateRequest is the POST /jobs payload.
type JobCreateRequest struct {
	Title         string  `json:"title" binding:"required"`
	Salary        int     `json:"salary" binding:"omitempty,gte=0"`
	Equity        float64 `json:"equity" binding:"gte=0,lte=1"`
	CompanyHandle string  `json:"company_handle" binding:"required"`
}
