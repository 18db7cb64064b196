package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"jobly/internal/apperrors"
	"jobly/internal/database"
	"jobly/internal/dtos"
	"jobly/internal/models"
)

type JobService struct {
	DB database.Querier
}

func NewJobService(db database.Querier) *JobService {
	return &JobService{DB: db}
}

// All returns every job, grouped by company and then by posting date.
func (s *JobService) All(ctx context.Context) ([]models.Job, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT id, title, salary, equity, company_handle, date_posted
		 FROM jobs ORDER BY company_handle, date_posted`)
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.DatePosted); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *JobService) Create(ctx context.Context, req dtos.JobCreateRequest) (models.Job, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, salary, equity, company_handle, date_posted`,
		req.Title, req.Salary, req.Equity, req.CompanyHandle)

	var j models.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.DatePosted); err != nil {
		return models.Job{}, apperrors.FromDB(err)
	}
	return j, nil
}

func (s *JobService) Get(ctx context.Context, id int) (models.Job, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, title, salary, equity, company_handle, date_posted FROM jobs WHERE id=$1`, id)

	var j models.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.DatePosted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, apperrors.NotFound("Could not find job id: %d", id)
		}
		return models.Job{}, apperrors.FromDB(err)
	}
	return j, nil
}

func (s *JobService) Update(ctx context.Context, id int, fields map[string]any) (models.Job, error) {
	picked, err := pickFields(fields, "title", "salary", "equity", "company_handle")
	if err != nil {
		return models.Job{}, err
	}

	query, values := database.BuildUpdate("jobs", picked, "id", id)
	row := s.DB.QueryRow(ctx, query, values...)

	var j models.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.DatePosted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, apperrors.NotFound("Could not find job id: %d", id)
		}
		return models.Job{}, apperrors.FromDB(err)
	}
	return j, nil
}

func (s *JobService) Remove(ctx context.Context, id int) error {
	query, key, err := database.BuildDelete("jobs", "id", id)
	if err != nil {
		return err
	}

	var j models.Job
	row := s.DB.QueryRow(ctx, query, key)
	if err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.DatePosted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Could not find job id: %d", id)
		}
		return apperrors.FromDB(err)
	}
	return nil
}

// Match finds jobs sharing at least one technology with the user.
func (s *JobService) Match(ctx context.Context, username string) ([]models.Job, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT DISTINCT j.id, j.title, j.salary, j.equity, j.company_handle, j.date_posted
		 FROM users u
		 JOIN user_technologies ut ON ut.username = u.username
		 JOIN job_technologies jt ON ut.technologies_id = jt.technologies_id
		 JOIN jobs j ON jt.job_id = j.id
		 WHERE u.username=$1`,
		username)
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle, &j.DatePosted); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFound("Could not find any matching jobs")
	}
	return jobs, nil
}
