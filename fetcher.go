package reeldata

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch retrieves the markup at url.
	// The context controls timeout and cancellation.
	// Returns EUNAVAILABLE on transport failure or a non-success status.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
