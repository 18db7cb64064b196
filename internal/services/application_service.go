package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jobly/internal/apperrors"
	"jobly/internal/database"
	"jobly/internal/models"
)

type ApplicationService struct {
	DB database.Querier
}

func NewApplicationService(db database.Querier) *ApplicationService {
	return &ApplicationService{DB: db}
}

// appKey composes the (username, job_id) pair into the stored app_pk column
// value, letting the single-key builders operate on the composite resource.
func appKey(username string, jobID int) string {
	return fmt.Sprintf("%s %d", username, jobID)
}

// All returns every application ordered by applicant.
func (s *ApplicationService) All(ctx context.Context) ([]models.Application, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT username, job_id, state, created_at FROM applications ORDER BY username`)
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.Username, &a.JobID, &a.State, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Create records that username applied to jobID with the given state. The
// composite key means a second application for the same pair is a constraint
// violation, not an overwrite.
func (s *ApplicationService) Create(ctx context.Context, username string, jobID int, state models.ApplicationState) (models.Application, error) {
	if !state.Valid() {
		return models.Application{}, apperrors.Validation([]string{
			fmt.Sprintf("state must be one of interested, applied, accepted, rejected; got %q", state),
		})
	}

	row := s.DB.QueryRow(ctx,
		`INSERT INTO applications (username, job_id, state)
		 VALUES ($1, $2, $3)
		 RETURNING username, job_id, state, created_at`,
		username, jobID, state)

	var a models.Application
	if err := row.Scan(&a.Username, &a.JobID, &a.State, &a.CreatedAt); err != nil {
		return models.Application{}, apperrors.FromDB(err)
	}
	return a, nil
}

// Update rewrites the application state. The machine is flat: any valid state
// may replace any other at any time.
func (s *ApplicationService) Update(ctx context.Context, username string, jobID int, fields map[string]any) (models.Application, error) {
	picked, err := pickFields(fields, "state")
	if err != nil {
		return models.Application{}, err
	}

	if raw, ok := picked["state"]; ok {
		state, ok := raw.(string)
		if !ok || !models.ApplicationState(state).Valid() {
			return models.Application{}, apperrors.Validation([]string{
				fmt.Sprintf("state must be one of interested, applied, accepted, rejected; got %v", raw),
			})
		}
	}

	query, values := database.BuildUpdate("applications", picked, "app_pk", appKey(username, jobID))
	row := s.DB.QueryRow(ctx, query, values...)

	var a models.Application
	var pk string
	if err := row.Scan(&a.Username, &a.JobID, &a.State, &a.CreatedAt, &pk); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Application{}, apperrors.NotFound(
				"Could not find application for username: %s, with job_id: %d", username, jobID)
		}
		return models.Application{}, apperrors.FromDB(err)
	}
	return a, nil
}

// Remove deletes one application; a repeat delete reports NotFound.
func (s *ApplicationService) Remove(ctx context.Context, username string, jobID int) error {
	query, id, err := database.BuildDelete("applications", "app_pk", appKey(username, jobID))
	if err != nil {
		return err
	}

	var a models.Application
	var pk string
	row := s.DB.QueryRow(ctx, query, id)
	if err := row.Scan(&a.Username, &a.JobID, &a.State, &a.CreatedAt, &pk); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound(
				"Could not find application for username: %s, with job_id: %d", username, jobID)
		}
		return apperrors.FromDB(err)
	}
	return nil
}
