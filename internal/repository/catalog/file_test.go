package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/laundromatzat/foliodex/internal/domain/project"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestFileSource_Load(t *testing.T) {
	path := writeCatalogFile(t, `[
		{
			"id": "sea-of-love",
			"type": "video",
			"title": "Sea of Love",
			"description": "Music video shot on the north shore",
			"date": "06/2019",
			"location": "Maui, HI",
			"tags": ["Michael"],
			"image_url": "/img/sea-of-love.jpg",
			"project_url": "/projects/sea-of-love"
		},
		{
			"id": "grain-planner",
			"type": "tool",
			"title": "Grain Planner",
			"date": "01/2023"
		}
	]`)

	src := NewFileSource(path)
	projects, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len = %d, want 2", len(projects))
	}
	if projects[0].ID() != "sea-of-love" || projects[1].ID() != "grain-planner" {
		t.Errorf("file order not preserved: %q, %q", projects[0].ID(), projects[1].ID())
	}
	if projects[0].Type() != project.Video {
		t.Errorf("type = %q, want video", projects[0].Type())
	}
	if got := projects[0].Tags(); len(got) != 1 || got[0] != "Michael" {
		t.Errorf("tags = %v", got)
	}
}

func TestFileSource_Load_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFileSource_Load_BadJSON(t *testing.T) {
	src := NewFileSource(writeCatalogFile(t, `{not json`))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFileSource_Load_UnknownType(t *testing.T) {
	src := NewFileSource(writeCatalogFile(t, `[{"id": "x", "type": "painting", "title": "X"}]`))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for unknown project type")
	}
}

func TestFileSource_Ping(t *testing.T) {
	path := writeCatalogFile(t, `[]`)
	src := NewFileSource(path)
	if err := src.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
	if err := missing.Ping(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
