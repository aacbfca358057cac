// Package health aggregates component health checks.
package health

import "context"

// CatalogPinger checks catalog backend availability.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog          CatalogPinger
	assistantEnabled bool
}

// New creates a Service.
func New(catalog CatalogPinger, assistantEnabled bool) *Service {
	return &Service{catalog: catalog, assistantEnabled: assistantEnabled}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.catalog.Ping(ctx); err != nil {
		checks["catalog"] = CheckError
	} else {
		checks["catalog"] = CheckOK
	}

	if s.assistantEnabled {
		checks["assistant"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
