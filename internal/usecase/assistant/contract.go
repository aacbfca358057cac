package assistant

import (
	"context"

	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
)

// Searcher runs catalog searches on behalf of the assistant.
type Searcher interface {
	Search(ctx context.Context, source, q string, opts query.Options) ([]project.Project, error)
}
