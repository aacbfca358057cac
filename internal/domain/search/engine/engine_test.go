package engine

import (
	"testing"

	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
)

func mustProject(
	t *testing.T,
	id string, typ project.Type, title, description, date, location string,
	tags ...string,
) project.Project {
	t.Helper()
	p, err := project.New(id, typ, title, description, date, location, tags, "", "")
	if err != nil {
		t.Fatalf("project.New(%s): %v", id, err)
	}
	return p
}

func testCatalog(t *testing.T) []project.Project {
	t.Helper()
	return []project.Project{
		mustProject(t, "sea-of-love", project.Video,
			"Sea of Love", "Windsurfing off the north shore", "06/2019", "Maui, HI", "Michael"),
		mustProject(t, "bernal-sunset", project.Photo,
			"Bernal Sunset", "Evening light over the city", "09/2021", "Bernal Heights, San Francisco"),
		mustProject(t, "field-notes", project.Photo,
			"Field Notes", "Scans from an old shoebox", "sometime", "", "Archive"),
		mustProject(t, "grain-planner", project.Tool,
			"Grain Planner", "Layout helper for carving blanks", "01/2023", ""),
	}
}

func ids(ps []project.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID()
	}
	return out
}

func assertIDs(t *testing.T, got []project.Project, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestSearch_EmptyRequestShortCircuits(t *testing.T) {
	e := New(testCatalog(t))

	for _, q := range []string{"", "   ", "\t\n"} {
		if got := e.Search(q, query.Options{}); len(got) != 0 {
			t.Errorf("Search(%q, empty opts) = %v, want none", q, ids(got))
		}
	}
}

func TestSearch_GeoAliasExpansion(t *testing.T) {
	e := New(testCatalog(t))

	// "Hawaii" appears nowhere in the project's own text; the Maui alias
	// rule injects it into the haystack.
	assertIDs(t, e.Search("hawaii", query.Options{}), "sea-of-love")
	assertIDs(t, e.Search("Hawaiʻi", query.Options{}), "sea-of-love")
}

func TestSearch_SceneTerm(t *testing.T) {
	e := New(testCatalog(t))

	assertIDs(t, e.Search("sunset", query.Options{}), "bernal-sunset")
	assertIDs(t, e.Search("bernal", query.Options{}), "bernal-sunset")
	// Synonyms expand key to aliases only: "dusk" is an alias, not a key,
	// so it does not reach back to projects that only say "sunset".
	assertIDs(t, e.Search("dusk", query.Options{}))
}

func TestSearch_TypeFilterExactness(t *testing.T) {
	catalog := []project.Project{
		mustProject(t, "v", project.Video, "Same Text", "identical", "01/2020", "Nowhere"),
		mustProject(t, "p", project.Photo, "Same Text", "identical", "01/2020", "Nowhere"),
	}
	e := New(catalog)

	assertIDs(t, e.Search("", query.New(project.Video, "", "", nil, nil)), "v")
	assertIDs(t, e.Search("", query.New(project.Photo, "", "", nil, nil)), "p")
}

func TestSearch_TypeAndQueryCombined(t *testing.T) {
	e := New(testCatalog(t))

	assertIDs(t, e.Search("hawaii", query.New(project.Video, "", "", nil, nil)), "sea-of-love")
	assertIDs(t, e.Search("hawaii", query.New(project.Photo, "", "", nil, nil)))
}

func TestSearch_DateRangeInclusive(t *testing.T) {
	catalog := []project.Project{
		mustProject(t, "june", project.Photo, "June", "", "06/2023", ""),
	}
	e := New(catalog)

	assertIDs(t, e.Search("", query.New("", "01/2023", "12/2023", nil, nil)), "june")
	assertIDs(t, e.Search("", query.New("", "06/2023", "06/2023", nil, nil)), "june")
	assertIDs(t, e.Search("", query.New("", "07/2023", "", nil, nil)))
	assertIDs(t, e.Search("", query.New("", "", "05/2023", nil, nil)))
}

func TestSearch_DateQualifiersTolerated(t *testing.T) {
	e := New(testCatalog(t))

	assertIDs(t, e.Search("", query.New("", "since 2020", "", nil, nil)),
		"bernal-sunset", "grain-planner")
}

func TestSearch_UnparseableProjectDateExcludedFromRanges(t *testing.T) {
	e := New(testCatalog(t))

	// Text query alone reaches the undated project.
	assertIDs(t, e.Search("field notes", query.Options{}), "field-notes")
	// Any date bound excludes it, even one every parseable date satisfies.
	assertIDs(t, e.Search("field notes", query.New("", "1900", "", nil, nil)))
	assertIDs(t, e.Search("field notes", query.New("", "", "2999", nil, nil)))
}

func TestSearch_UnparseableBoundsIgnored(t *testing.T) {
	e := New(testCatalog(t))

	// A bound that does not parse contributes no restriction; the request
	// is still non-empty, so everything passes the date clause.
	got := e.Search("", query.New("", "whenever", "", nil, nil))
	assertIDs(t, got, "sea-of-love", "bernal-sunset", "field-notes", "grain-planner")
}

func TestSearch_TagFilters(t *testing.T) {
	e := New(testCatalog(t))

	assertIDs(t, e.Search("", query.New("", "", "", []string{"michael"}, nil)), "sea-of-love")
	assertIDs(t, e.Search("", query.New("", "", "", []string{"MICHAEL"}, nil)), "sea-of-love")
	assertIDs(t, e.Search("", query.New("", "", "", nil, []string{"Michael"})),
		"bernal-sunset", "field-notes", "grain-planner")
	// Tag matching is exact after normalization, not substring.
	assertIDs(t, e.Search("", query.New("", "", "", []string{"Mich"}, nil)))
	// Unknown tags simply match nothing.
	assertIDs(t, e.Search("", query.New("", "", "", []string{"nope"}, nil)))
}

func TestSearch_PreservesCatalogOrder(t *testing.T) {
	e := New(testCatalog(t))

	got := e.Search("", query.New("", "2019", "2024", nil, nil))
	assertIDs(t, got, "sea-of-love", "bernal-sunset", "grain-planner")
}

func TestSearch_Deterministic(t *testing.T) {
	e := New(testCatalog(t))

	first := ids(e.Search("hawaii video", query.Options{}))
	for i := 0; i < 10; i++ {
		again := ids(e.Search("hawaii video", query.Options{}))
		if len(again) != len(first) {
			t.Fatalf("run %d: got %v, want %v", i, again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: got %v, want %v", i, again, first)
			}
		}
	}
}

func TestSearch_GarbageQueryNeverPanics(t *testing.T) {
	e := New(testCatalog(t))

	for _, q := range []string{
		"\x00\x01\x02", "????", "ʻʻʻ", "💥💥💥", "   since about around   ",
		"a", "((((", "sea of love maui hawaii video clip sunset 2019",
	} {
		_ = e.Search(q, query.Options{})
	}
}

func TestSearch_ScenarioFromCatalog(t *testing.T) {
	e := New(testCatalog(t))

	assertIDs(t, e.Search("hawaii", query.New(project.Video, "", "", nil, nil)), "sea-of-love")
	assertIDs(t, e.Search("sunset", query.Options{}), "bernal-sunset")
	assertIDs(t, e.Search("", query.New("", "2020", "", nil, nil)),
		"bernal-sunset", "grain-planner")
}

func TestNew_CopiesCatalog(t *testing.T) {
	catalog := testCatalog(t)
	e := New(catalog)

	catalog[0] = mustProject(t, "swapped", project.Tool, "Swapped", "", "", "")
	assertIDs(t, e.Search("hawaii", query.Options{}), "sea-of-love")
}

func TestSize(t *testing.T) {
	if got := New(testCatalog(t)).Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
}
