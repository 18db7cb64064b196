package models

import (
	"time"
)

// DefaultPhotoURL is applied when a user registers without a photo.
const DefaultPhotoURL = "https://cdn3.vectorstock.com/i/1000x1000/21/62/human-icon-in-circle-vector-25482162.jpg"

// Company is keyed by its handle; the handle never changes once assigned.
type Company struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	NumEmployees int    `json:"num_employees"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
}

// Job belongs to a company via its handle. ID and DatePosted are set by
// storage at creation and never change.
type Job struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Salary        int       `json:"salary"`
	Equity        float64   `json:"equity"`
	CompanyHandle string    `json:"company_handle"`
	DatePosted    time.Time `json:"date_posted"`
}

// User is keyed by username. Password holds the bcrypt hash and is never
// serialized; use Public for anything that leaves the service layer.
type User struct {
	Username  string `json:"username"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url"`
	IsAdmin   bool   `json:"is_admin"`
}

// PublicUser is the default-safe projection of a user.
type PublicUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url"`
}

// Public strips the password hash and admin flag.
func (u User) Public() PublicUser {
	return PublicUser{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
	}
}

// ApplicationState is the lifecycle state of a job application.
type ApplicationState string

const (
	StateInterested ApplicationState = "interested"
	StateApplied    ApplicationState = "applied"
	StateAccepted   ApplicationState = "accepted"
	StateRejected   ApplicationState = "rejected"
)

// Valid reports whether s is one of the known states. Any valid state may be
// written at any time; there is no transition ordering.
func (s ApplicationState) Valid() bool {
	switch s {
	case StateInterested, StateApplied, StateAccepted, StateRejected:
		return true
	}
	return false
}

// Application links a user to a job. Identity is the (username, job_id) pair;
// at most one application exists per user per job.
type Application struct {
	Username  string           `json:"username"`
	JobID     int              `json:"job_id"`
	State     ApplicationState `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
}
