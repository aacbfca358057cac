// Package engine implements the deterministic multi-signal project search:
// normalized free text expanded through synonym and geographic alias
// dictionaries, combined with type, date-range, and tag predicates over an
// immutable catalog.
package engine

import (
	"strings"

	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/lexicon"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
	"github.com/laundromatzat/foliodex/internal/domain/search/text"
	"github.com/laundromatzat/foliodex/internal/domain/search/yearmonth"
)

// Engine searches a fixed catalog. It precomputes one haystack, tag set, and
// parsed date per project at construction; after that every call is a pure
// read, so a single Engine is safe for concurrent use without locking.
type Engine struct {
	lex      *lexicon.Lexicon
	projects []project.Project

	// per-project precomputation, parallel to projects
	haystacks []string
	tagSets   []map[string]struct{}
	dateYM    []int
	dateOK    []bool
}

// New builds an engine over the catalog using the built-in lexicon.
func New(catalog []project.Project) *Engine {
	return NewWithLexicon(catalog, lexicon.Default())
}

// NewWithLexicon builds an engine with a custom lexicon (used by tests).
func NewWithLexicon(catalog []project.Project, lex *lexicon.Lexicon) *Engine {
	e := &Engine{
		lex:       lex,
		projects:  append([]project.Project(nil), catalog...),
		haystacks: make([]string, len(catalog)),
		tagSets:   make([]map[string]struct{}, len(catalog)),
		dateYM:    make([]int, len(catalog)),
		dateOK:    make([]bool, len(catalog)),
	}
	for i, p := range e.projects {
		e.haystacks[i] = buildHaystack(p, lex)
		e.tagSets[i] = normalizedTagSet(p.Tags())
		e.dateYM[i], e.dateOK[i] = yearmonth.Parse(p.Date())
	}
	return e
}

// Size returns the number of catalog entries the engine serves.
func (e *Engine) Size() int { return len(e.projects) }

// Search filters the catalog by the free-text query and options. Matches
// keep catalog order; no re-sorting happens here. The function is total: any
// string input yields a (possibly empty) result, never an error. A fully
// empty request (blank query and no options) returns nothing by policy.
func (e *Engine) Search(q string, opts query.Options) []project.Project {
	trimmed := strings.TrimSpace(q)
	if trimmed == "" && opts.IsEmpty() {
		return []project.Project{}
	}

	fromYM, hasFrom := yearmonth.Parse(opts.DateFrom())
	toYM, hasTo := yearmonth.Parse(opts.DateTo())
	dateBounded := hasFrom || hasTo

	includeTags := normalizeTags(opts.IncludeTags())
	excludeTags := normalizeTags(opts.ExcludeTags())

	var geoNeedles, contentNeedles []string
	if trimmed != "" {
		geoNeedles, contentNeedles = e.partitionNeedles(e.expand(q))
	}

	matched := make([]project.Project, 0, len(e.projects))
	for i, p := range e.projects {
		if opts.HasType() && p.Type() != opts.Type() {
			continue
		}
		if dateBounded {
			// Unknown dates never match a bounded range.
			if !e.dateOK[i] {
				continue
			}
			if hasFrom && e.dateYM[i] < fromYM {
				continue
			}
			if hasTo && e.dateYM[i] > toYM {
				continue
			}
		}
		if !hasAllTags(e.tagSets[i], includeTags) || hasAnyTag(e.tagSets[i], excludeTags) {
			continue
		}
		if trimmed != "" {
			hay := e.haystacks[i]
			if len(geoNeedles) > 0 && !anyContained(hay, geoNeedles) {
				continue
			}
			if len(contentNeedles) > 0 && !anyContained(hay, contentNeedles) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}

// expand turns a free-text query into the set of searchable terms: the full
// normalized query, every synonym group whose key occurs in it, and every
// individual token.
func (e *Engine) expand(q string) map[string]struct{} {
	nq := text.Normalize(q)
	terms := make(map[string]struct{})
	if nq == "" {
		return terms
	}
	terms[nq] = struct{}{}

	// Dictionary keys match by substring containment, not whole words: a
	// query containing "california" also hits the key inside longer text.
	// The flip side is that a key occurring inside an unrelated word fires
	// too; the dictionaries are curated with that in mind.
	for key, aliases := range e.lex.GeoSynonyms() {
		if strings.Contains(nq, key) {
			for _, a := range aliases {
				terms[a] = struct{}{}
			}
		}
	}
	for key, aliases := range e.lex.ContentSynonyms() {
		if strings.Contains(nq, key) {
			for _, a := range aliases {
				terms[a] = struct{}{}
			}
		}
	}

	for _, tok := range strings.Fields(nq) {
		terms[tok] = struct{}{}
	}
	return terms
}

// partitionNeedles splits expanded terms into geographic needles and content
// needles. Content needles keep geo terms too; only type vocabulary and
// stopwords are excluded, so a geographic term must hold in both clauses.
func (e *Engine) partitionNeedles(terms map[string]struct{}) (geo, content []string) {
	for t := range terms {
		if e.lex.IsGeoTerm(t) {
			geo = append(geo, t)
		}
		if !e.lex.IsTypeTerm(t) && !e.lex.IsStopword(t) {
			content = append(content, t)
		}
	}
	return geo, content
}

// buildHaystack concatenates and normalizes a project's searchable text,
// then appends canonical region aliases for every rule firing on the raw
// location or the base haystack.
func buildHaystack(p project.Project, lex *lexicon.Lexicon) string {
	base := text.Normalize(strings.Join([]string{
		p.Title(),
		p.Description(),
		p.Date(),
		p.Location(),
		strings.Join(p.Tags(), " "),
	}, " "))

	hay := base
	for _, rule := range lex.AliasRules() {
		if rule.Matches(p.Location()) || rule.Matches(base) {
			hay += " " + strings.Join(rule.Aliases(), " ")
		}
	}
	return hay
}

func anyContained(hay string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(hay, n) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if nt := text.Normalize(t); nt != "" {
			out = append(out, nt)
		}
	}
	return out
}

func normalizedTagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if nt := text.Normalize(t); nt != "" {
			set[nt] = struct{}{}
		}
	}
	return set
}

func hasAllTags(set map[string]struct{}, tags []string) bool {
	for _, t := range tags {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

func hasAnyTag(set map[string]struct{}, tags []string) bool {
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
