package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"vacstore/internal/common"
	"vacstore/internal/domain/feed"
)

// InsertCompany stores an employer record. Existing rows win: a second
// insert with the same id is a no-op, never an update.
func (s *Store) InsertCompany(ctx context.Context, e feed.Employer) error {
	if !e.Complete() {
		return common.NewError(common.CodeValidation, "employer record missing required fields", nil)
	}
	query, args, err := squirrel.Insert("companies").
		Columns("id", "name", "url").
		Values(int64(*e.ID), *e.Name, *e.AlternateURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to build company insert", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return common.NewError(common.CodeInternal, "failed to insert company", err)
	}
	return nil
}
