// Package assistant turns chat messages into catalog searches via an LLM.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
)

// Reply is the assistant's answer, with any projects a search call produced.
type Reply struct {
	Text     string
	Projects []project.Project
}

// Service routes chat messages through the completer and executes
// search calls it emits.
type Service struct {
	completer domain.Completer
	searcher  Searcher
}

// New creates an assistant service. A nil completer disables the feature.
func New(completer domain.Completer, searcher Searcher) *Service {
	return &Service{completer: completer, searcher: searcher}
}

// Enabled reports whether a completer is configured.
func (s *Service) Enabled() bool {
	return s.completer != nil
}

// Chat sends a message to the completer. When the completer answers with a
// search call, the call is executed and its results attached to the reply.
func (s *Service) Chat(ctx context.Context, message string) (Reply, error) {
	if s.completer == nil {
		return Reply{}, domain.ErrAssistantNotConfigured
	}
	if strings.TrimSpace(message) == "" {
		return Reply{}, fmt.Errorf("%w: message is required", domain.ErrInvalidRequest)
	}

	completion, err := s.completer.Complete(ctx, message)
	if err != nil {
		return Reply{}, err
	}

	if completion.Call == nil {
		return Reply{Text: completion.Text}, nil
	}

	opts := optionsFromCall(completion.Call)
	projects, err := s.searcher.Search(ctx, "assistant", completion.Call.Query, opts)
	if err != nil {
		return Reply{}, err
	}

	text := completion.Text
	if text == "" {
		text = summarize(completion.Call.Query, len(projects))
	}
	return Reply{Text: text, Projects: projects}, nil
}

// optionsFromCall maps a search call to engine options. Unknown type labels
// are dropped rather than rejected so a sloppy model answer still searches.
func optionsFromCall(call *domain.SearchCall) query.Options {
	var pt project.Type
	if t, ok := project.ParseType(call.Type); ok {
		pt = t
	}
	return query.New(pt, call.DateFrom, call.DateTo, call.IncludeTags, call.ExcludeTags)
}

func summarize(q string, n int) string {
	switch {
	case n == 0 && q != "":
		return fmt.Sprintf("I could not find any projects matching %q.", q)
	case n == 0:
		return "I could not find any matching projects."
	case n == 1:
		return "I found 1 matching project."
	default:
		return fmt.Sprintf("I found %d matching projects.", n)
	}
}
