package filter

import (
	"net/url"
	"reflect"
	"testing"

	"jobly/internal/apperrors"
	"jobly/internal/models"
)

func testCompanies() []models.Company {
	return []models.Company{
		{Handle: "APPL", Name: "Apple Inc", NumEmployees: 10},
		{Handle: "UNH", Name: "UnitedHealth Group", NumEmployees: 0},
		{Handle: "MSFT", Name: "Microsoft", NumEmployees: 100000},
	}
}

func handles(companies []models.Company) []string {
	out := make([]string, len(companies))
	for i, c := range companies {
		out[i] = c.Handle
	}
	return out
}

func TestCompaniesSearch(t *testing.T) {
	got, err := Companies(url.Values{"search": {"Apple"}}, testCompanies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"APPL"}; !reflect.DeepEqual(handles(got), want) {
		t.Errorf("handles = %v, want %v", handles(got), want)
	}
}

func TestCompaniesSearchMatchesHandle(t *testing.T) {
	got, err := Companies(url.Values{"search": {"MSFT"}}, testCompanies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"MSFT"}; !reflect.DeepEqual(handles(got), want) {
		t.Errorf("handles = %v, want %v", handles(got), want)
	}
}

func TestCompaniesMinEmployees(t *testing.T) {
	// strictly greater than, input order preserved among survivors
	got, err := Companies(url.Values{"min_employees": {"1"}}, testCompanies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"APPL", "MSFT"}; !reflect.DeepEqual(handles(got), want) {
		t.Errorf("handles = %v, want %v", handles(got), want)
	}
}

func TestCompaniesMaxEmployees(t *testing.T) {
	got, err := Companies(url.Values{"max_employees": {"1"}}, testCompanies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"UNH"}; !reflect.DeepEqual(handles(got), want) {
		t.Errorf("handles = %v, want %v", handles(got), want)
	}
}

func TestCompaniesInvalidRange(t *testing.T) {
	_, err := Companies(url.Values{"min_employees": {"10"}, "max_employees": {"1"}}, testCompanies())
	if err == nil {
		t.Fatal("expected an error for min > max")
	}
	if apperrors.Status(err) != 400 {
		t.Errorf("status = %d, want 400", apperrors.Status(err))
	}
	if want := "min_employees parameter is greater than max_employees parameter"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestCompaniesNumericComparison(t *testing.T) {
	// "9" > "10" lexicographically; numerically it is not
	companies := []models.Company{
		{Handle: "A", NumEmployees: 9},
		{Handle: "B", NumEmployees: 100},
	}
	got, err := Companies(url.Values{"min_employees": {"10"}}, companies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"B"}; !reflect.DeepEqual(handles(got), want) {
		t.Errorf("handles = %v, want %v", handles(got), want)
	}
}

func TestCompaniesBadNumber(t *testing.T) {
	_, err := Companies(url.Values{"min_employees": {"ten"}}, testCompanies())
	if apperrors.Status(err) != 400 {
		t.Errorf("status = %d, want 400", apperrors.Status(err))
	}
}

func TestCompaniesNoParams(t *testing.T) {
	in := testCompanies()
	got, err := Companies(url.Values{}, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("expected the input list back unchanged")
	}
}

func testJobs() []models.Job {
	return []models.Job{
		{ID: 1, Title: "Engineer", Salary: 120000, Equity: 0.1, CompanyHandle: "APPL"},
		{ID: 2, Title: "Designer", Salary: 90000, Equity: 0, CompanyHandle: "MSFT"},
		{ID: 3, Title: "Engineer II", Salary: 150000, Equity: 0.5, CompanyHandle: "MSFT"},
	}
}

func jobIDs(jobs []models.Job) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestJobsSearch(t *testing.T) {
	got, err := Jobs(url.Values{"search": {"Engineer"}}, testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(jobIDs(got), want) {
		t.Errorf("ids = %v, want %v", jobIDs(got), want)
	}
}

func TestJobsSearchMatchesCompanyHandle(t *testing.T) {
	got, err := Jobs(url.Values{"search": {"MSFT"}}, testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(jobIDs(got), want) {
		t.Errorf("ids = %v, want %v", jobIDs(got), want)
	}
}

func TestJobsMinSalary(t *testing.T) {
	// greater-or-equal
	got, err := Jobs(url.Values{"min_salary": {"120000"}}, testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(jobIDs(got), want) {
		t.Errorf("ids = %v, want %v", jobIDs(got), want)
	}
}

func TestJobsMinEquity(t *testing.T) {
	got, err := Jobs(url.Values{"min_equity": {"0.1"}}, testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(jobIDs(got), want) {
		t.Errorf("ids = %v, want %v", jobIDs(got), want)
	}
}

func TestJobsCombined(t *testing.T) {
	params := url.Values{"search": {"Engineer"}, "min_salary": {"130000"}}
	got, err := Jobs(params, testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{3}; !reflect.DeepEqual(jobIDs(got), want) {
		t.Errorf("ids = %v, want %v", jobIDs(got), want)
	}
}
