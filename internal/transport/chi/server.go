// Package chi exposes the HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
	assistantuc "github.com/laundromatzat/foliodex/internal/usecase/assistant"
	cataloguc "github.com/laundromatzat/foliodex/internal/usecase/catalog"
	healthuc "github.com/laundromatzat/foliodex/internal/usecase/health"
	searchuc "github.com/laundromatzat/foliodex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server carries the use case services behind the HTTP handlers.
type Server struct {
	catalog       *cataloguc.Service
	search        *searchuc.Service
	assistant     *assistantuc.Service
	health        *healthuc.Service
	maxLimit      int
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. maxLimit caps the search limit parameter.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	assistant *assistantuc.Service,
	health *healthuc.Service,
	maxLimit int,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:   catalog,
		search:    search,
		assistant: assistant,
		health:    health,
		maxLimit:  maxLimit,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProjectNotFound, http.StatusNotFound, codeProjectNotFound),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrAssistantNotConfigured, http.StatusNotImplemented, codeAssistantNotConfigured),
		sentinelHandler(domain.ErrAssistantRateLimited, http.StatusTooManyRequests, codeRateLimited),
		sentinelHandler(domain.ErrAssistantProviderError, http.StatusBadGateway, codeAssistantUnavailable),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, codeInternalError),
	}
	return s
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", s.ListProjects)
		r.Get("/projects/{id}", s.GetProject)
		r.Get("/search", s.SearchProjects)
		r.Post("/assistant/chat", s.AssistantChat)
	})
}

// ListProjects handles GET /api/v1/projects.
func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	var projectType project.Type
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, ok := project.ParseType(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "unknown project type: "+raw)
			return
		}
		projectType = t
	}

	projects, err := s.catalog.List(r.Context(), projectType)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectListResponse{
		Items: projectsToResponse(projects),
		Total: len(projects),
	})
}

// GetProject handles GET /api/v1/projects/{id}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectToResponse(p))
}

// searchParams are the bound query parameters of GET /api/v1/search.
type searchParams struct {
	q           string
	projectType project.Type
	dateFrom    string
	dateTo      string
	includeTags []string
	excludeTags []string
	limit       int
}

func (s *Server) bindSearchParams(r *http.Request) (searchParams, error) {
	values := r.URL.Query()
	p := searchParams{
		q:        values.Get("q"),
		dateFrom: values.Get("date_from"),
		dateTo:   values.Get("date_to"),
	}

	if raw := values.Get("type"); raw != "" {
		t, ok := project.ParseType(raw)
		if !ok {
			return searchParams{}, errors.New("unknown project type: " + raw)
		}
		p.projectType = t
	}

	if _, ok := values["include_tags"]; ok {
		if err := runtime.BindQueryParameter("form", true, false, "include_tags", values, &p.includeTags); err != nil {
			return searchParams{}, err
		}
	}
	if _, ok := values["exclude_tags"]; ok {
		if err := runtime.BindQueryParameter("form", true, false, "exclude_tags", values, &p.excludeTags); err != nil {
			return searchParams{}, err
		}
	}
	if _, ok := values["limit"]; ok {
		if err := runtime.BindQueryParameter("form", true, false, "limit", values, &p.limit); err != nil {
			return searchParams{}, err
		}
		if p.limit < 0 || (s.maxLimit > 0 && p.limit > s.maxLimit) {
			return searchParams{}, errors.New("limit out of range")
		}
	}

	return p, nil
}

// SearchProjects handles GET /api/v1/search.
func (s *Server) SearchProjects(w http.ResponseWriter, r *http.Request) {
	params, err := s.bindSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	opts := query.New(params.projectType, params.dateFrom, params.dateTo, params.includeTags, params.excludeTags)
	results, err := s.search.Search(r.Context(), "api", params.q, opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	total := len(results)
	if params.limit > 0 && len(results) > params.limit {
		results = results[:params.limit]
	}

	writeJSON(w, http.StatusOK, projectListResponse{
		Items: projectsToResponse(results),
		Total: total,
	})
}

// AssistantChat handles POST /api/v1/assistant/chat.
func (s *Server) AssistantChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := s.assistant.Chat(r.Context(), req.Message)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Text:     reply.Text,
		Projects: projectsToResponse(reply.Projects),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToResponse(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProjectNotFound,
		domain.ErrInvalidRequest,
		domain.ErrAssistantNotConfigured,
		domain.ErrAssistantRateLimited,
		domain.ErrAssistantProviderError,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
