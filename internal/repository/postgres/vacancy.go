package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"vacstore/internal/common"
	"vacstore/internal/domain/feed"
)

// InsertVacancy stores one vacancy under the given company. Records missing
// id, name or alternate_url are skipped silently: the upstream feed is known
// to drop fields and a malformed record must not abort a batch import.
// Duplicate ids are ignored on conflict. Database failures are returned to
// the caller, which decides between logging and propagation.
func (s *Store) InsertVacancy(ctx context.Context, v feed.Vacancy, companyID int64) error {
	if !v.Complete() {
		s.log.Debug().Int64("company_id", companyID).Msg("skipping vacancy with missing required fields")
		return nil
	}
	salaryFrom, salaryTo, currency := v.SalaryBounds()
	query, args, err := squirrel.Insert("vacancies").
		Columns("id", "company_id", "name", "salary_from", "salary_to", "currency", "url").
		Values(int64(*v.ID), companyID, *v.Name, salaryFrom, salaryTo, currency, *v.AlternateURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to build vacancy insert", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return common.NewError(common.CodeInternal, "failed to insert vacancy", err)
	}
	return nil
}
