package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quickwick/rpgvault/internal/catalog"
	"github.com/quickwick/rpgvault/internal/metadata"
)

// ErrNoQuery is returned when a query carries neither a vendor identifier
// nor a title to search for.
var ErrNoQuery = errors.New("insufficient metadata to construct query")

// Identify resolves the query into candidate products and drives one fetch
// task per candidate, pushing completed records into sink as they finish.
//
// Task starts are staggered so the remote service is not hit in a burst.
// Cancelling ctx stops further launches and stops the wait; it does not kill
// in-flight tasks, whose late pushes into sink are harmless. An error is
// returned only when the search request itself fails; a lookup that finds
// nothing usable returns nil with an empty sink.
func (s *Source) Identify(ctx context.Context, q Query, sink *metadata.Queue) error {
	opts := s.options()

	var candidates []catalog.Candidate
	if q.VendorID != "" {
		slog.Info("Using direct product identifier", "vendor", s.Vendor().IDKey, "id", q.VendorID)
		candidates = []catalog.Candidate{{URL: s.BuildDetailURL(q.VendorID), Relevance: 0}}
	} else {
		phrase := SearchPhrase(q.Title)
		if phrase == "" {
			return ErrNoQuery
		}
		slog.Info("Searching catalog", "vendor", s.Vendor().IDKey, "phrase", phrase)

		found, err := s.client.Search(ctx, phrase)
		if err != nil {
			return fmt.Errorf("identify query failed: %w", err)
		}
		candidates = found
	}

	slog.Info("Resolved candidates", "count", len(candidates))

	var wg sync.WaitGroup
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go s.fetchDetails(ctx, candidate, opts, sink, &wg)

		// Don't send all requests at the same time.
		select {
		case <-time.After(s.stagger):
		case <-ctx.Done():
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Info("Lookup cancelled, returning partial results", "collected", sink.Len())
	}

	return nil
}
