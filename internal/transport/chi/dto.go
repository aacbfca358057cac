package chi

import (
	"github.com/laundromatzat/foliodex/internal/domain/project"
	healthuc "github.com/laundromatzat/foliodex/internal/usecase/health"
)

// errorCode is the machine-readable code in error responses.
type errorCode string

const (
	codeBadRequest             errorCode = "bad_request"
	codeValidationFailed       errorCode = "validation_failed"
	codeProjectNotFound        errorCode = "project_not_found"
	codeAssistantNotConfigured errorCode = "assistant_not_configured"
	codeAssistantUnavailable   errorCode = "assistant_unavailable"
	codeRateLimited            errorCode = "rate_limited"
	codeInternalError          errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type projectResponse struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ProjectURL  string   `json:"project_url,omitempty"`
}

type projectListResponse struct {
	Items []projectResponse `json:"items"`
	Total int               `json:"total"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Text     string            `json:"text"`
	Projects []projectResponse `json:"projects"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func projectToResponse(p project.Project) projectResponse {
	return projectResponse{
		ID:          p.ID(),
		Type:        string(p.Type()),
		Title:       p.Title(),
		Description: p.Description(),
		Date:        p.Date(),
		Location:    p.Location(),
		Tags:        p.Tags(),
		ImageURL:    p.ImageURL(),
		ProjectURL:  p.ProjectURL(),
	}
}

func projectsToResponse(projects []project.Project) []projectResponse {
	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = projectToResponse(p)
	}
	return items
}

func healthToResponse(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}
