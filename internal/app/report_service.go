package app

import (
	"context"

	"vacstore/internal/domain/report"
)

type ReportStore interface {
	CompanyVacancyCounts(ctx context.Context) ([]report.CompanyVacancyCount, error)
	AllVacancies(ctx context.Context) ([]report.Vacancy, error)
	AverageSalary(ctx context.Context) (*float64, error)
	VacanciesAboveAverage(ctx context.Context) ([]report.SalaryRange, error)
	SearchVacancies(ctx context.Context, keyword string) ([]report.SalaryRange, error)
}

// ReportService exposes the analytical queries to the HTTP layer.
// Read failures propagate to the caller unchanged.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) CompanyVacancyCounts(ctx context.Context) ([]report.CompanyVacancyCount, error) {
	return s.store.CompanyVacancyCounts(ctx)
}

func (s *ReportService) AllVacancies(ctx context.Context) ([]report.Vacancy, error) {
	return s.store.AllVacancies(ctx)
}

func (s *ReportService) AverageSalary(ctx context.Context) (*float64, error) {
	return s.store.AverageSalary(ctx)
}

func (s *ReportService) VacanciesAboveAverage(ctx context.Context) ([]report.SalaryRange, error) {
	return s.store.VacanciesAboveAverage(ctx)
}

func (s *ReportService) SearchVacancies(ctx context.Context, keyword string) ([]report.SalaryRange, error) {
	return s.store.SearchVacancies(ctx, keyword)
}
