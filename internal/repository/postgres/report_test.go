package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacstore/internal/common"
	"vacstore/internal/domain/report"
)

func TestStore_CompanyVacancyCounts(t *testing.T) {
	t.Run("Should include companies with zero vacancies", func(t *testing.T) {
		mock, store := newMockStore(t)
		rows := mock.NewRows([]string{"company_name", "vacancies"}).
			AddRow("Acme", int64(1)).
			AddRow("Empty Corp", int64(0))
		mock.ExpectQuery("FROM companies c LEFT JOIN vacancies v ON v.company_id = c.id GROUP BY c.name").
			WillReturnRows(rows)

		counts, err := store.CompanyVacancyCounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []report.CompanyVacancyCount{
			{CompanyName: "Acme", Vacancies: 1},
			{CompanyName: "Empty Corp", Vacancies: 0},
		}, counts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("Should propagate read failure", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery("FROM companies c LEFT JOIN vacancies").
			WillReturnError(errors.New("relation does not exist"))

		counts, err := store.CompanyVacancyCounts(context.Background())
		assert.Error(t, err)
		assert.Nil(t, counts)
		assert.Equal(t, common.CodeInternal, common.CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_AllVacancies(t *testing.T) {
	t.Run("Should join vacancies with company names", func(t *testing.T) {
		mock, store := newMockStore(t)
		rows := mock.NewRows([]string{"company_name", "name", "salary_from", "salary_to", "url"}).
			AddRow("Acme", "Engineer", int32Ptr(1000), int32Ptr(2000), "http://acme/10")
		mock.ExpectQuery("FROM vacancies v JOIN companies c ON v.company_id = c.id").
			WillReturnRows(rows)

		vacancies, err := store.AllVacancies(context.Background())
		require.NoError(t, err)
		require.Len(t, vacancies, 1)
		assert.Equal(t, "Acme", vacancies[0].CompanyName)
		assert.Equal(t, "Engineer", vacancies[0].Name)
		assert.Equal(t, int32(1000), *vacancies[0].SalaryFrom)
		assert.Equal(t, int32(2000), *vacancies[0].SalaryTo)
		assert.Equal(t, "http://acme/10", vacancies[0].URL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_AverageSalary(t *testing.T) {
	t.Run("Should return the computed average", func(t *testing.T) {
		mock, store := newMockStore(t)
		avg := 1500.0
		mock.ExpectQuery(`SELECT AVG\(\(salary_from \+ salary_to\) / 2\)`).
			WillReturnRows(mock.NewRows([]string{"avg_salary"}).AddRow(&avg))

		result, err := store.AverageSalary(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1500.0, *result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("Should return nil when no qualifying rows exist", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`SELECT AVG\(\(salary_from \+ salary_to\) / 2\)`).
			WillReturnRows(mock.NewRows([]string{"avg_salary"}).AddRow((*float64)(nil)))

		result, err := store.AverageSalary(context.Background())
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_VacanciesAboveAverage(t *testing.T) {
	t.Run("Should filter with strict comparison against the average", func(t *testing.T) {
		mock, store := newMockStore(t)
		avg := 1500.0
		mock.ExpectQuery(`SELECT AVG\(\(salary_from \+ salary_to\) / 2\)`).
			WillReturnRows(mock.NewRows([]string{"avg_salary"}).AddRow(&avg))
		rows := mock.NewRows([]string{"name", "salary_from", "salary_to", "url"}).
			AddRow("Architect", int32Ptr(2000), int32Ptr(3000), "http://acme/11")
		mock.ExpectQuery(`FROM vacancies WHERE \(salary_from \+ salary_to\) / 2 > \$1`).
			WithArgs(1500.0).
			WillReturnRows(rows)

		vacancies, err := store.VacanciesAboveAverage(context.Background())
		require.NoError(t, err)
		require.Len(t, vacancies, 1)
		assert.Equal(t, "Architect", vacancies[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("Should return empty result when average is undefined", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`SELECT AVG\(\(salary_from \+ salary_to\) / 2\)`).
			WillReturnRows(mock.NewRows([]string{"avg_salary"}).AddRow((*float64)(nil)))

		vacancies, err := store.VacanciesAboveAverage(context.Background())
		require.NoError(t, err)
		assert.Empty(t, vacancies)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_SearchVacancies(t *testing.T) {
	t.Run("Should wrap the keyword with wildcards for ILIKE", func(t *testing.T) {
		mock, store := newMockStore(t)
		rows := mock.NewRows([]string{"name", "salary_from", "salary_to", "url"}).
			AddRow("SENIOR ENGINEER", int32Ptr(1000), int32Ptr(2000), "http://acme/10")
		mock.ExpectQuery(`FROM vacancies WHERE name ILIKE \$1`).
			WithArgs("%Engineer%").
			WillReturnRows(rows)

		vacancies, err := store.SearchVacancies(context.Background(), "Engineer")
		require.NoError(t, err)
		require.Len(t, vacancies, 1)
		assert.Equal(t, "SENIOR ENGINEER", vacancies[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
