package handlers

import (
	"net/http"
	"strings"

	"vacstore/internal/app"
	"vacstore/internal/common"
	"vacstore/internal/http/response"
)

type ReportHandler struct {
	reports *app.ReportService
}

func NewReportHandler(reports *app.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) CompanyVacancyCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reports.CompanyVacancyCounts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, counts)
}

func (h *ReportHandler) AllVacancies(w http.ResponseWriter, r *http.Request) {
	vacancies, err := h.reports.AllVacancies(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, vacancies)
}

type averageSalaryResponse struct {
	AverageSalary *float64 `json:"average_salary"`
}

// AverageSalary reports null when no vacancy has both salary bounds set.
func (h *ReportHandler) AverageSalary(w http.ResponseWriter, r *http.Request) {
	avg, err := h.reports.AverageSalary(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, averageSalaryResponse{AverageSalary: avg})
}

func (h *ReportHandler) VacanciesAboveAverage(w http.ResponseWriter, r *http.Request) {
	vacancies, err := h.reports.VacanciesAboveAverage(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, vacancies)
}

func (h *ReportHandler) SearchVacancies(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("text"))
	if keyword == "" {
		response.Error(w, common.NewError(common.CodeValidation, "text query parameter is required", nil))
		return
	}
	vacancies, err := h.reports.SearchVacancies(r.Context(), keyword)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, vacancies)
}
