package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"vacstore/internal/common"
)

// DB is the minimal connection surface the store needs. A live *pgx.Conn
// satisfies it, as does a pgxmock connection in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db  DB
	log zerolog.Logger
}

func NewStore(db DB, logger zerolog.Logger) *Store {
	return &Store{db: db, log: logger}
}

const (
	createCompaniesDDL = `CREATE TABLE IF NOT EXISTS companies (
		id INT PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		url TEXT
	)`
	createVacanciesDDL = `CREATE TABLE IF NOT EXISTS vacancies (
		id INT PRIMARY KEY,
		company_id INT REFERENCES companies(id),
		name VARCHAR(255),
		salary_from INT,
		salary_to INT,
		currency VARCHAR(10),
		url TEXT
	)`
)

// EnsureSchema creates the companies and vacancies tables if they do not
// exist yet. Safe to run against an already-initialized database.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createCompaniesDDL); err != nil {
		return common.NewError(common.CodeSchema, "failed to create companies table", err)
	}
	if _, err := s.db.Exec(ctx, createVacanciesDDL); err != nil {
		return common.NewError(common.CodeSchema, "failed to create vacancies table", err)
	}
	return nil
}
