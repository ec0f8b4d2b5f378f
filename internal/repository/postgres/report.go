package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"vacstore/internal/common"
	"vacstore/internal/domain/report"
)

// CompanyVacancyCounts returns every company with its vacancy count,
// including companies that have no vacancies. Ordering is left to the
// database.
func (s *Store) CompanyVacancyCounts(ctx context.Context) ([]report.CompanyVacancyCount, error) {
	query, args, err := squirrel.Select("c.name AS company_name", "COUNT(v.id) AS vacancies").
		From("companies c").
		LeftJoin("vacancies v ON v.company_id = c.id").
		GroupBy("c.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build company counts query", err)
	}
	var counts []report.CompanyVacancyCount
	if err := pgxscan.Select(ctx, s.db, &counts, query, args...); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load company vacancy counts", err)
	}
	return counts, nil
}

// AllVacancies returns every vacancy whose company reference resolves,
// joined with the company name.
func (s *Store) AllVacancies(ctx context.Context) ([]report.Vacancy, error) {
	query, args, err := squirrel.Select("c.name AS company_name", "v.name", "v.salary_from", "v.salary_to", "v.url").
		From("vacancies v").
		Join("companies c ON v.company_id = c.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build vacancies query", err)
	}
	var vacancies []report.Vacancy
	if err := pgxscan.Select(ctx, s.db, &vacancies, query, args...); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load vacancies", err)
	}
	return vacancies, nil
}

// AverageSalary computes the mean midpoint (salary_from+salary_to)/2 over
// vacancies where both bounds are non-null. Returns nil when no row
// qualifies; callers must handle the absent value.
func (s *Store) AverageSalary(ctx context.Context) (*float64, error) {
	query, args, err := squirrel.Select("AVG((salary_from + salary_to) / 2) AS avg_salary").
		From("vacancies").
		Where("salary_from IS NOT NULL AND salary_to IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build average salary query", err)
	}
	var avg *float64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&avg); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load average salary", err)
	}
	return avg, nil
}

// VacanciesAboveAverage returns vacancies whose salary midpoint strictly
// exceeds the current average. A vacancy exactly at the average is excluded.
func (s *Store) VacanciesAboveAverage(ctx context.Context) ([]report.SalaryRange, error) {
	avg, err := s.AverageSalary(ctx)
	if err != nil {
		return nil, err
	}
	if avg == nil {
		return []report.SalaryRange{}, nil
	}
	query, args, err := squirrel.Select("name", "salary_from", "salary_to", "url").
		From("vacancies").
		Where(squirrel.Expr("(salary_from + salary_to) / 2 > ?", *avg)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build above-average query", err)
	}
	var vacancies []report.SalaryRange
	if err := pgxscan.Select(ctx, s.db, &vacancies, query, args...); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load above-average vacancies", err)
	}
	return vacancies, nil
}

// SearchVacancies matches the keyword as a case-insensitive substring of
// the vacancy name.
func (s *Store) SearchVacancies(ctx context.Context, keyword string) ([]report.SalaryRange, error) {
	query, args, err := squirrel.Select("name", "salary_from", "salary_to", "url").
		From("vacancies").
		Where(squirrel.ILike{"name": "%" + keyword + "%"}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to build search query", err)
	}
	var vacancies []report.SalaryRange
	if err := pgxscan.Select(ctx, s.db, &vacancies, query, args...); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to search vacancies", err)
	}
	return vacancies, nil
}
