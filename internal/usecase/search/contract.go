package search

import (
	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
)

// Engine executes catalog searches.
type Engine interface {
	Search(q string, opts query.Options) []project.Project
	Size() int
}
