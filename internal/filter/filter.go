// Package filter applies query-string filters to already-fetched record
// lists. Filtering is pure and preserves the relative order of the input.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"jobly/internal/apperrors"
	"jobly/internal/models"
)

// Companies filters by search (case-sensitive substring on name or handle),
// min_employees (strictly greater) and max_employees (strictly less). An
// inconsistent min/max pair fails before any filtering happens.
func Companies(params url.Values, companies []models.Company) ([]models.Company, error) {
	minStr := params.Get("min_employees")
	maxStr := params.Get("max_employees")

	minEmployees, err := parseIntParam("min_employees", minStr)
	if err != nil {
		return nil, err
	}
	maxEmployees, err := parseIntParam("max_employees", maxStr)
	if err != nil {
		return nil, err
	}
	if minStr != "" && maxStr != "" && minEmployees > maxEmployees {
		return nil, apperrors.BadRequest("min_employees parameter is greater than max_employees parameter")
	}

	if search := params.Get("search"); search != "" {
		companies = keepCompanies(companies, func(c models.Company) bool {
			return strings.Contains(c.Name, search) || strings.Contains(c.Handle, search)
		})
	}
	if minStr != "" {
		companies = keepCompanies(companies, func(c models.Company) bool {
			return c.NumEmployees > minEmployees
		})
	}
	if maxStr != "" {
		companies = keepCompanies(companies, func(c models.Company) bool {
			return c.NumEmployees < maxEmployees
		})
	}
	return companies, nil
}

// Jobs filters by search (substring on title or company handle), min_salary
// and min_equity (both greater-or-equal).
func Jobs(params url.Values, jobs []models.Job) ([]models.Job, error) {
	minSalaryStr := params.Get("min_salary")
	minEquityStr := params.Get("min_equity")

	minSalary, err := parseIntParam("min_salary", minSalaryStr)
	if err != nil {
		return nil, err
	}
	minEquity, err := parseFloatParam("min_equity", minEquityStr)
	if err != nil {
		return nil, err
	}

	if search := params.Get("search"); search != "" {
		jobs = keepJobs(jobs, func(j models.Job) bool {
			return strings.Contains(j.Title, search) || strings.Contains(j.CompanyHandle, search)
		})
	}
	if minSalaryStr != "" {
		jobs = keepJobs(jobs, func(j models.Job) bool {
			return j.Salary >= minSalary
		})
	}
	if minEquityStr != "" {
		jobs = keepJobs(jobs, func(j models.Job) bool {
			return j.Equity >= minEquity
		})
	}
	return jobs, nil
}

func keepCompanies(in []models.Company, pred func(models.Company) bool) []models.Company {
	out := make([]models.Company, 0, len(in))
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func keepJobs(in []models.Job, pred func(models.Job) bool) []models.Job {
	out := make([]models.Job, 0, len(in))
	for _, j := range in {
		if pred(j) {
			out = append(out, j)
		}
	}
	return out
}

// Numeric query parameters arrive as strings; comparisons must be numeric,
// never lexicographic.
func parseIntParam(name, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.BadRequest("%s must be a number", name)
	}
	return n, nil
}

func parseFloatParam(name, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apperrors.BadRequest("%s must be a number", name)
	}
	return f, nil
}
