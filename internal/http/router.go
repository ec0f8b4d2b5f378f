package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"vacstore/internal/http/handlers"
	httpmw "vacstore/internal/http/middleware"
)

type RouterDependencies struct {
	ReportHandler  *handlers.ReportHandler
	Logger         zerolog.Logger
	RateLimiter    *httpmw.RateLimiter
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
}

type Router struct {
	deps RouterDependencies
}

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.Recover(r.deps.Logger),
		httpmw.RateLimit(r.deps.RateLimiter, r.deps.RateLimit, r.deps.RateWindow),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/reports/companies":
			r.deps.ReportHandler.CompanyVacancyCounts(w, req)
			return
		case req.Method == http.MethodGet && path == "/reports/vacancies":
			r.deps.ReportHandler.AllVacancies(w, req)
			return
		case req.Method == http.MethodGet && path == "/reports/vacancies/above-average":
			r.deps.ReportHandler.VacanciesAboveAverage(w, req)
			return
		case req.Method == http.MethodGet && path == "/reports/vacancies/search":
			r.deps.ReportHandler.SearchVacancies(w, req)
			return
		case req.Method == http.MethodGet && path == "/reports/average-salary":
			r.deps.ReportHandler.AverageSalary(w, req)
			return
		}

		http.NotFound(w, req)
	})
}
