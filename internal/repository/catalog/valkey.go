package catalog

import (
	"context"
	"fmt"

	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/domain/project"
)

// store is the consumer interface for the Valkey-backed catalog (ISP).
type store interface {
	Ping(ctx context.Context) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// ValkeySource reads the catalog from Valkey hashes. The ordered id list
// lives at <prefix>projects and each project at <prefix>project:<id>.
type ValkeySource struct {
	store     store
	keyPrefix string
}

// NewValkeySource creates a Valkey-backed catalog source.
func NewValkeySource(s store, keyPrefix string) *ValkeySource {
	return &ValkeySource{store: s, keyPrefix: keyPrefix}
}

func (s *ValkeySource) listKey() string {
	return s.keyPrefix + "projects"
}

func (s *ValkeySource) projectKey(id string) string {
	return s.keyPrefix + "project:" + id
}

// Load fetches the ordered id list then hydrates all project hashes in one
// round-trip, preserving list order.
func (s *ValkeySource) Load(ctx context.Context) ([]project.Project, error) {
	ids, err := s.store.LRange(ctx, s.listKey(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("load project ids: %w", err)
	}
	if len(ids) == 0 {
		return []project.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.projectKey(id)
	}

	hashes, err := s.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	projects := make([]project.Project, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			return nil, fmt.Errorf("project %s: %w", ids[i], domain.ErrProjectNotFound)
		}
		p, err := projectFromHash(m)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Ping checks backend connectivity.
func (s *ValkeySource) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
