package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"vacstore/internal/domain/feed"
)

type fakeFeed struct {
	employers map[int64]feed.Employer
	vacancies map[int64][]feed.Vacancy
	errs      map[int64]error
}

func (f *fakeFeed) Employer(ctx context.Context, id int64) (feed.Employer, error) {
	if err := f.errs[id]; err != nil {
		return feed.Employer{}, err
	}
	return f.employers[id], nil
}

func (f *fakeFeed) EmployerVacancies(ctx context.Context, id int64) ([]feed.Vacancy, error) {
	return f.vacancies[id], nil
}

type insertedVacancy struct {
	vacancy   feed.Vacancy
	companyID int64
}

type fakeStore struct {
	companies       []feed.Employer
	vacancies       []insertedVacancy
	companyErr      error
	vacancyFailures map[int64]error
}

func (s *fakeStore) InsertCompany(ctx context.Context, e feed.Employer) error {
	if s.companyErr != nil {
		return s.companyErr
	}
	s.companies = append(s.companies, e)
	return nil
}

func (s *fakeStore) InsertVacancy(ctx context.Context, v feed.Vacancy, companyID int64) error {
	if v.ID != nil {
		if err := s.vacancyFailures[int64(*v.ID)]; err != nil {
			return err
		}
	}
	s.vacancies = append(s.vacancies, insertedVacancy{vacancy: v, companyID: companyID})
	return nil
}

func idRef(v int64) *feed.ID {
	id := feed.ID(v)
	return &id
}

func strRef(v string) *string { return &v }

func testEmployer(id int64, name string) feed.Employer {
	return feed.Employer{ID: idRef(id), Name: strRef(name), AlternateURL: strRef("http://" + name)}
}

func testVacancy(id int64, name string) feed.Vacancy {
	return feed.Vacancy{ID: idRef(id), Name: strRef(name), AlternateURL: strRef("http://v/" + name)}
}

func TestImportService_Run(t *testing.T) {
	feedSource := &fakeFeed{
		employers: map[int64]feed.Employer{
			1: testEmployer(1, "acme"),
			2: testEmployer(2, "globex"),
		},
		vacancies: map[int64][]feed.Vacancy{
			1: {testVacancy(10, "engineer"), testVacancy(11, "architect")},
			2: {testVacancy(20, "analyst")},
		},
		errs: map[int64]error{},
	}
	store := &fakeStore{vacancyFailures: map[int64]error{}}
	service := NewImportService(feedSource, store, zerolog.Nop())

	summary, err := service.Run(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Companies != 2 || summary.Vacancies != 3 || summary.Failures != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(store.vacancies) != 3 {
		t.Fatalf("expected 3 vacancies stored, got %d", len(store.vacancies))
	}
	if store.vacancies[0].companyID != 1 || store.vacancies[2].companyID != 2 {
		t.Fatalf("vacancies stored under wrong companies: %+v", store.vacancies)
	}
}

func TestImportService_Run_ContinuesAfterVacancyFailure(t *testing.T) {
	feedSource := &fakeFeed{
		employers: map[int64]feed.Employer{1: testEmployer(1, "acme")},
		vacancies: map[int64][]feed.Vacancy{
			1: {testVacancy(10, "engineer"), testVacancy(11, "architect")},
		},
		errs: map[int64]error{},
	}
	store := &fakeStore{vacancyFailures: map[int64]error{10: errors.New("constraint violation")}}
	service := NewImportService(feedSource, store, zerolog.Nop())

	summary, err := service.Run(context.Background(), []int64{1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Vacancies != 1 || summary.Failures != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(store.vacancies) != 1 || int64(*store.vacancies[0].vacancy.ID) != 11 {
		t.Fatalf("expected only vacancy 11 stored, got %+v", store.vacancies)
	}
}

func TestImportService_Run_ContinuesAfterEmployerFailure(t *testing.T) {
	feedSource := &fakeFeed{
		employers: map[int64]feed.Employer{2: testEmployer(2, "globex")},
		vacancies: map[int64][]feed.Vacancy{2: {testVacancy(20, "analyst")}},
		errs:      map[int64]error{1: errors.New("upstream unavailable")},
	}
	store := &fakeStore{vacancyFailures: map[int64]error{}}
	service := NewImportService(feedSource, store, zerolog.Nop())

	summary, err := service.Run(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Companies != 1 || summary.Vacancies != 1 || summary.Failures != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestImportService_Run_StopsOnCancelledContext(t *testing.T) {
	feedSource := &fakeFeed{
		employers: map[int64]feed.Employer{1: testEmployer(1, "acme")},
		vacancies: map[int64][]feed.Vacancy{},
		errs:      map[int64]error{},
	}
	store := &fakeStore{vacancyFailures: map[int64]error{}}
	service := NewImportService(feedSource, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := service.Run(ctx, []int64{1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
