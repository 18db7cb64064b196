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

type CompanyService struct {
	DB database.Querier
}

func NewCompanyService(db database.Querier) *CompanyService {
	return &CompanyService{DB: db}
}

// All returns every company ordered by handle.
func (s *CompanyService) All(ctx context.Context) ([]models.Company, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT handle, name, num_employees, description, logo_url FROM companies ORDER BY handle`)
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *CompanyService) Create(ctx context.Context, req dtos.CompanyCreateRequest) (models.Company, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO companies (handle, name, num_employees, description, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING handle, name, num_employees, description, logo_url`,
		req.Handle, req.Name, req.NumEmployees, req.Description, req.LogoURL)

	var c models.Company
	if err := row.Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL); err != nil {
		return models.Company{}, apperrors.FromDB(err)
	}
	return c, nil
}

func (s *CompanyService) Get(ctx context.Context, handle string) (models.Company, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT handle, name, num_employees, description, logo_url FROM companies WHERE handle=$1`,
		handle)

	var c models.Company
	if err := row.Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Company{}, apperrors.NotFound("Could not find company: %s", handle)
		}
		return models.Company{}, apperrors.FromDB(err)
	}
	return c, nil
}

// Update writes an arbitrary subset of company columns and returns the
// persisted row.
func (s *CompanyService) Update(ctx context.Context, handle string, fields map[string]any) (models.Company, error) {
	picked, err := pickFields(fields, "name", "num_employees", "description", "logo_url")
	if err != nil {
		return models.Company{}, err
	}

	query, values := database.BuildUpdate("companies", picked, "handle", handle)
	row := s.DB.QueryRow(ctx, query, values...)

	var c models.Company
	if err := row.Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Company{}, apperrors.NotFound("Could not find company: %s", handle)
		}
		return models.Company{}, apperrors.FromDB(err)
	}
	return c, nil
}

// Remove deletes by handle. A repeat delete reports NotFound; delete is
// deliberately not idempotent.
func (s *CompanyService) Remove(ctx context.Context, handle string) error {
	query, id, err := database.BuildDelete("companies", "handle", handle)
	if err != nil {
		return err
	}

	var c models.Company
	row := s.DB.QueryRow(ctx, query, id)
	if err := row.Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("Could not find company: %s", handle)
		}
		return apperrors.FromDB(err)
	}
	return nil
}
