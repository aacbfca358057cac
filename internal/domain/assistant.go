package domain

import "context"

// Completer produces an assistant completion for a visitor message.
// Implementations wrap an external chat provider.
type Completer interface {
	Complete(ctx context.Context, message string) (Completion, error)
}

// Completion is the assistant's answer: either prose, a search call, or both.
type Completion struct {
	// Text is the prose part of the answer. May be empty when the
	// provider only emits a tool call.
	Text string
	// Call is the structured search extracted from the provider's tool
	// call. Nil when the assistant answered in prose only.
	Call *SearchCall
}

// SearchCall carries the raw search_projects tool-call arguments.
// All fields are untrusted provider output; consumers parse them leniently.
type SearchCall struct {
	Query       string
	Type        string
	DateFrom    string
	DateTo      string
	IncludeTags []string
	ExcludeTags []string
}
