package domain

import "errors"

var (
	// ErrProjectNotFound signals a missing catalog entry.
	ErrProjectNotFound = errors.New("project not found")
	// ErrCatalogUnavailable signals that the catalog source cannot be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidRequest signals a malformed API request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAssistantNotConfigured signals that no assistant provider is set up.
	ErrAssistantNotConfigured = errors.New("assistant not configured")
	// ErrAssistantProviderError signals an assistant provider failure.
	ErrAssistantProviderError = errors.New("assistant provider error")
	// ErrAssistantRateLimited signals a rate limit hit at the assistant provider.
	ErrAssistantRateLimited = errors.New("assistant rate limited")
)
