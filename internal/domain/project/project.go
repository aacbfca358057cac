package project

import (
	"fmt"
	"strings"
)

// Type is the kind of portfolio entry.
type Type string

// Catalog entry kinds.
const (
	Photo       Type = "Photo"
	Video       Type = "Video"
	Cinemagraph Type = "Cinemagraph"
	Tool        Type = "Tool"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	return t == Photo || t == Video || t == Cinemagraph || t == Tool
}

// ParseType resolves a free-text label to a Type, case-insensitively.
// ok is false for unknown labels, including the empty string.
func ParseType(label string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "photo":
		return Photo, true
	case "video":
		return Video, true
	case "cinemagraph":
		return Cinemagraph, true
	case "tool":
		return Tool, true
	default:
		return "", false
	}
}

// Project is an immutable catalog entry. Search never mutates it.
type Project struct {
	id          string
	projectType Type
	title       string
	description string
	date        string
	location    string
	tags        []string
	imageURL    string
	projectURL  string
}

// New validates and creates a Project.
func New(
	id string, t Type, title, description, date, location string,
	tags []string, imageURL, projectURL string,
) (Project, error) {
	if id == "" {
		return Project{}, fmt.Errorf("project id is required")
	}
	if !t.IsValid() {
		return Project{}, fmt.Errorf("invalid project type %q for %s", t, id)
	}
	if title == "" {
		return Project{}, fmt.Errorf("project title is required for %s", id)
	}
	return Project{
		id:          id,
		projectType: t,
		title:       title,
		description: description,
		date:        date,
		location:    location,
		tags:        append([]string(nil), tags...),
		imageURL:    imageURL,
		projectURL:  projectURL,
	}, nil
}

// ID returns the stable unique identifier.
func (p Project) ID() string { return p.id }

// Type returns the entry kind.
func (p Project) Type() Type { return p.projectType }

// Title returns the display title.
func (p Project) Title() string { return p.title }

// Description returns the free-text description.
func (p Project) Description() string { return p.description }

// Date returns the capture date, primarily "MM/YYYY".
func (p Project) Date() string { return p.date }

// Location returns the free-text location. May be empty.
func (p Project) Location() string { return p.location }

// Tags returns the ordered tag labels.
func (p Project) Tags() []string { return p.tags }

// ImageURL returns the preview resource reference. Opaque to search.
func (p Project) ImageURL() string { return p.imageURL }

// ProjectURL returns the target resource reference. Opaque to search.
func (p Project) ProjectURL() string { return p.projectURL }
