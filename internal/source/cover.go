package source

import (
	"context"
	"log/slog"

	"github.com/quickwick/rpgvault/internal/metadata"
)

// DownloadCover resolves and fetches at most one cover image for the query.
//
// A cover URL already known to the cross-reference cache short-circuits the
// whole lookup. Otherwise a full identify run populates the cache and the
// ranked results are scanned for the first identifier with a known cover.
// Returns (nil, nil) when no cover could be found or fetched; only a failed
// search surfaces an error.
func (s *Source) DownloadCover(ctx context.Context, q Query) ([]byte, error) {
	coverURL, ok := s.CachedCoverURL(q)
	if !ok {
		slog.Info("No cached cover found, running identify")
		sink := metadata.NewQueue()
		if err := s.Identify(ctx, q, sink); err != nil {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, nil
		}

		records := sink.Drain()
		metadata.SortByRelevance(records)
		for _, record := range records {
			// Consult the cache freshly; the fetch tasks populated it.
			if url, found := s.cache.CoverURLForIdentifier(record.VendorID); found {
				coverURL = url
				ok = true
				break
			}
		}
	}

	if !ok || coverURL == "" {
		slog.Info("No cover found")
		return nil, nil
	}
	if ctx.Err() != nil {
		return nil, nil
	}

	slog.Info("Downloading cover", "url", coverURL)
	data, err := s.client.Clone().FetchBytes(ctx, coverURL)
	if err != nil {
		slog.Error("Failed to download cover", "url", coverURL, "error", err)
		return nil, nil
	}
	return data, nil
}
