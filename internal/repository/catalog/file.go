// Package catalog loads the project catalog from its configured backend.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/laundromatzat/foliodex/internal/domain/project"
)

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed catalog source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the whole catalog, preserving file order.
func (s *FileSource) Load(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var dtos []projectDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.path, err)
	}

	projects := make([]project.Project, 0, len(dtos))
	for _, dto := range dtos {
		p, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Ping reports whether the catalog file is readable.
func (s *FileSource) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("catalog file: %w", err)
	}
	return nil
}
