package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/laundromatzat/foliodex/internal/domain/project"
)

// projectDTO is the serialized representation of a project, shared by the
// JSON catalog file and the Valkey hash layout.
type projectDTO struct {
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

func (d projectDTO) toDomain() (project.Project, error) {
	t, ok := project.ParseType(d.Type)
	if !ok {
		return project.Project{}, fmt.Errorf("project %s: unknown type %q", d.ID, d.Type)
	}
	return project.New(d.ID, t, d.Title, d.Description, d.Date, d.Location, d.Tags, d.ImageURL, d.ProjectURL)
}

// projectFromHash hydrates a project from an HGETALL result map.
// Tags are stored as a JSON array string under the "tags" field.
func projectFromHash(m map[string]string) (project.Project, error) {
	var tags []string
	if raw := m["tags"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &tags); err != nil {
			return project.Project{}, fmt.Errorf("project %s: unmarshal tags: %w", m["id"], err)
		}
	}
	dto := projectDTO{
		ID:          m["id"],
		Type:        m["type"],
		Title:       m["title"],
		Description: m["description"],
		Date:        m["date"],
		Location:    m["location"],
		Tags:        tags,
		ImageURL:    m["image_url"],
		ProjectURL:  m["project_url"],
	}
	return dto.toDomain()
}
