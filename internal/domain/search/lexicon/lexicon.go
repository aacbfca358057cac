// Package lexicon holds the static synonym and alias dictionaries the search
// engine expands queries and project haystacks with. All data is normalized
// once at package load and is read-only afterwards.
package lexicon

import (
	"regexp"

	"github.com/laundromatzat/foliodex/internal/domain/search/text"
)

// geoSynonymData maps a canonical region to the place names that imply it.
// Used both directions: a query naming the region gains the aliases, and an
// alias rule below puts the region back onto matching projects.
var geoSynonymData = map[string][]string{
	"hawaii": {
		"maui", "oahu", "kauai", "big island", "honolulu",
		"lahaina", "hana", "haleakala",
	},
	"california": {
		"san francisco", "sf", "bay area", "bernal heights",
		"marin", "big sur", "yosemite", "tahoe", "mendocino",
	},
	"san francisco": {
		"sf", "bernal heights", "mission district", "golden gate",
		"ocean beach", "twin peaks",
	},
	"new york": {"nyc", "brooklyn", "manhattan"},
	"mexico":   {"oaxaca", "mexico city", "baja"},
	"japan":    {"tokyo", "kyoto", "osaka"},
}

// contentSynonymData maps content-type and scene terms to related terms.
var contentSynonymData = map[string][]string{
	"video":       {"clip", "film", "footage", "reel"},
	"photo":       {"photograph", "picture", "shot", "still", "image"},
	"cinemagraph": {"loop", "living photo", "motion still"},
	"tool":        {"app", "utility", "experiment"},

	"sunset":   {"dusk", "golden hour", "twilight"},
	"sunrise":  {"dawn", "daybreak", "first light"},
	"ocean":    {"sea", "surf", "waves", "coast"},
	"mountain": {"peak", "summit", "ridge"},
	"night":    {"stars", "astro", "milky way"},
	"portrait": {"headshot", "people"},
}

// typeTerms are the dictionary keys whose synonym groups describe entry
// kinds rather than scenes. Their expansions form the type vocabulary that
// the content-needle pass ignores.
var typeTerms = []string{"video", "photo", "cinemagraph", "tool"}

// stopwordData are filler tokens carrying no match signal on their own.
var stopwordData = []string{
	"a", "an", "the", "of", "in", "on", "at", "for", "with", "from",
	"to", "and", "or", "any", "all", "some", "me", "my",
	"show", "find", "search", "see", "please",
	"project", "projects", "work", "works",
	"about", "around", "near", "taken",
}

// aliasRuleData injects canonical regions into a project's haystack when its
// location or base text names a place inside that region. Rules are ordered
// and matched case-insensitively against both the raw location and the
// normalized base haystack.
var aliasRuleData = []struct {
	pattern string
	aliases []string
}{
	{`maui|oahu|kauai|honolulu|lahaina|haleakala|\bhana\b|big island`, []string{"hawaii"}},
	{`bernal|mission district|golden gate|ocean beach|twin peaks|\bsf\b`, []string{"san francisco", "california"}},
	{`san francisco`, []string{"california"}},
	{`tahoe|yosemite|big sur|marin|mendocino`, []string{"california"}},
	{`brooklyn|manhattan|\bnyc\b`, []string{"new york"}},
	{`oaxaca|mexico city|\bbaja\b`, []string{"mexico"}},
	{`tokyo|kyoto|osaka`, []string{"japan"}},
}

// AliasRule appends canonical region terms to haystacks whose text matches.
type AliasRule struct {
	pattern *regexp.Regexp
	aliases []string
}

// Matches reports whether the rule fires for the given text.
func (r AliasRule) Matches(s string) bool {
	return s != "" && r.pattern.MatchString(s)
}

// Aliases returns the canonical terms the rule injects.
func (r AliasRule) Aliases() []string { return r.aliases }

// Lexicon is the full read-only dictionary set.
type Lexicon struct {
	geoSynonyms     map[string][]string
	contentSynonyms map[string][]string
	aliasRules      []AliasRule
	geoVocab        map[string]struct{}
	typeVocab       map[string]struct{}
	stopwords       map[string]struct{}
}

var std = build()

// Default returns the built-in lexicon.
func Default() *Lexicon { return std }

// GeoSynonyms returns the canonical-region dictionary. Read-only.
func (l *Lexicon) GeoSynonyms() map[string][]string { return l.geoSynonyms }

// ContentSynonyms returns the content/scene dictionary. Read-only.
func (l *Lexicon) ContentSynonyms() map[string][]string { return l.contentSynonyms }

// AliasRules returns the ordered haystack alias rules. Read-only.
func (l *Lexicon) AliasRules() []AliasRule { return l.aliasRules }

// IsGeoTerm reports whether a normalized term is geographic vocabulary.
func (l *Lexicon) IsGeoTerm(term string) bool {
	_, ok := l.geoVocab[term]
	return ok
}

// IsTypeTerm reports whether a normalized term is entry-kind vocabulary.
func (l *Lexicon) IsTypeTerm(term string) bool {
	_, ok := l.typeVocab[term]
	return ok
}

// IsStopword reports whether a normalized term is a stopword.
func (l *Lexicon) IsStopword(term string) bool {
	_, ok := l.stopwords[term]
	return ok
}

func build() *Lexicon {
	l := &Lexicon{
		geoSynonyms:     make(map[string][]string, len(geoSynonymData)),
		contentSynonyms: make(map[string][]string, len(contentSynonymData)),
		geoVocab:        make(map[string]struct{}),
		typeVocab:       make(map[string]struct{}),
		stopwords:       make(map[string]struct{}, len(stopwordData)),
	}

	for key, aliases := range geoSynonymData {
		nk := text.Normalize(key)
		na := normalizeAll(aliases)
		l.geoSynonyms[nk] = na
		l.geoVocab[nk] = struct{}{}
		for _, a := range na {
			l.geoVocab[a] = struct{}{}
		}
	}

	for key, aliases := range contentSynonymData {
		l.contentSynonyms[text.Normalize(key)] = normalizeAll(aliases)
	}
	for _, key := range typeTerms {
		nk := text.Normalize(key)
		l.typeVocab[nk] = struct{}{}
		for _, a := range l.contentSynonyms[nk] {
			l.typeVocab[a] = struct{}{}
		}
	}

	for _, w := range stopwordData {
		l.stopwords[text.Normalize(w)] = struct{}{}
	}

	l.aliasRules = make([]AliasRule, len(aliasRuleData))
	for i, raw := range aliasRuleData {
		l.aliasRules[i] = AliasRule{
			pattern: regexp.MustCompile(`(?i)` + raw.pattern),
			aliases: normalizeAll(raw.aliases),
		}
	}

	return l
}

func normalizeAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = text.Normalize(t)
	}
	return out
}
