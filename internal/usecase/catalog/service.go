// Package catalog serves project listings and lookups.
package catalog

import (
	"context"
	"fmt"

	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/domain/project"
)

// Service answers catalog reads from an in-memory snapshot loaded at startup.
type Service struct {
	projects []project.Project
	byID     map[string]project.Project
}

// New creates a catalog service over the loaded projects.
func New(projects []project.Project) *Service {
	byID := make(map[string]project.Project, len(projects))
	for _, p := range projects {
		byID[p.ID()] = p
	}
	return &Service{projects: projects, byID: byID}
}

// List returns projects in catalog order, optionally filtered by type.
func (s *Service) List(ctx context.Context, t project.Type) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if t == "" {
		out := make([]project.Project, len(s.projects))
		copy(out, s.projects)
		return out, nil
	}

	out := make([]project.Project, 0)
	for _, p := range s.projects {
		if p.Type() == t {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get returns the project with the given id.
func (s *Service) Get(ctx context.Context, id string) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}

	p, ok := s.byID[id]
	if !ok {
		return project.Project{}, fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
	}
	return p, nil
}

// Size returns the number of projects in the catalog.
func (s *Service) Size() int {
	return len(s.projects)
}
