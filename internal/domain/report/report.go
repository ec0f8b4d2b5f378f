// Package report defines the row types returned by the analytical queries.
package report

type CompanyVacancyCount struct {
	CompanyName string `db:"company_name" json:"company_name"`
	Vacancies   int64  `db:"vacancies"    json:"vacancies"`
}

type Vacancy struct {
	CompanyName string `db:"company_name" json:"company_name"`
	Name        string `db:"name"         json:"name"`
	SalaryFrom  *int32 `db:"salary_from"  json:"salary_from"`
	SalaryTo    *int32 `db:"salary_to"    json:"salary_to"`
	URL         string `db:"url"          json:"url"`
}

type SalaryRange struct {
	Name       string `db:"name"        json:"name"`
	SalaryFrom *int32 `db:"salary_from" json:"salary_from"`
	SalaryTo   *int32 `db:"salary_to"   json:"salary_to"`
	URL        string `db:"url"         json:"url"`
}
