package dtos

// ApplicationCreateRequest is the POST /jobs/:id/apply payload.
type ApplicationCreateRequest struct {
	State string `json:"state" binding:"required,oneof=interested applied accepted rejected"`
}
