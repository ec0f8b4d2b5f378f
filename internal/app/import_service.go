package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"vacstore/internal/domain/feed"
)

type Feed interface {
	Employer(ctx context.Context, id int64) (feed.Employer, error)
	EmployerVacancies(ctx context.Context, id int64) ([]feed.Vacancy, error)
}

type VacancyStore interface {
	InsertCompany(ctx context.Context, e feed.Employer) error
	InsertVacancy(ctx context.Context, v feed.Vacancy, companyID int64) error
}

type ImportSummary struct {
	Companies int
	Vacancies int
	Failures  int
}

// ImportService pulls employers and their vacancies from the feed and
// loads them into the store. The import is best-effort: a failing record
// or employer is logged and counted, never aborts the run.
type ImportService struct {
	feed  Feed
	store VacancyStore
	log   zerolog.Logger
}

func NewImportService(feed Feed, store VacancyStore, logger zerolog.Logger) *ImportService {
	return &ImportService{feed: feed, store: store, log: logger}
}

func (s *ImportService) Run(ctx context.Context, employerIDs []int64) (ImportSummary, error) {
	var summary ImportSummary
	for _, employerID := range employerIDs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := s.importEmployer(ctx, employerID, &summary); err != nil {
			summary.Failures++
			s.log.Error().Err(err).Int64("employer_id", employerID).Msg("employer import failed")
		}
	}
	return summary, nil
}

func (s *ImportService) importEmployer(ctx context.Context, employerID int64, summary *ImportSummary) error {
	employer, err := s.feed.Employer(ctx, employerID)
	if err != nil {
		return err
	}
	if err := s.store.InsertCompany(ctx, employer); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	summary.Companies++

	vacancies, err := s.feed.EmployerVacancies(ctx, employerID)
	if err != nil {
		return err
	}
	for _, vacancy := range vacancies {
		if err := s.store.InsertVacancy(ctx, vacancy, employerID); err != nil {
			summary.Failures++
			s.log.Error().Err(err).
				Int64("employer_id", employerID).
				Interface("vacancy", vacancy).
				Msg("vacancy insert failed")
			continue
		}
		summary.Vacancies++
	}
	return nil
}
