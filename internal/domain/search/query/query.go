// Package query holds the per-call search options.
package query

import (
	"github.com/laundromatzat/foliodex/internal/domain/project"
)

// Options narrows a search beyond the free-text query. The zero value means
// "no filters". Construction is lenient on purpose: unknown types and
// malformed dates degrade to zero matches downstream, they never error.
type Options struct {
	projectType project.Type
	dateFrom    string
	dateTo      string
	includeTags []string
	excludeTags []string
}

// New creates search options. projectType may be empty for "any type";
// dateFrom/dateTo accept any of the tolerated date shapes and may be empty.
func New(
	projectType project.Type, dateFrom, dateTo string,
	includeTags, excludeTags []string,
) Options {
	return Options{
		projectType: projectType,
		dateFrom:    dateFrom,
		dateTo:      dateTo,
		includeTags: append([]string(nil), includeTags...),
		excludeTags: append([]string(nil), excludeTags...),
	}
}

// Type returns the type restriction, or "" for none.
func (o Options) Type() project.Type { return o.projectType }

// HasType reports whether a type restriction is set.
func (o Options) HasType() bool { return o.projectType != "" }

// DateFrom returns the inclusive lower date bound, or "" for none.
func (o Options) DateFrom() string { return o.dateFrom }

// DateTo returns the inclusive upper date bound, or "" for none.
func (o Options) DateTo() string { return o.dateTo }

// IncludeTags returns tags every match must carry.
func (o Options) IncludeTags() []string { return o.includeTags }

// ExcludeTags returns tags no match may carry.
func (o Options) ExcludeTags() []string { return o.excludeTags }

// IsEmpty reports whether no option is set at all.
func (o Options) IsEmpty() bool {
	return o.projectType == "" &&
		o.dateFrom == "" && o.dateTo == "" &&
		len(o.includeTags) == 0 && len(o.excludeTags) == 0
}
