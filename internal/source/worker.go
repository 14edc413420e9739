package source

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/quickwick/rpgvault/internal/catalog"
	"github.com/quickwick/rpgvault/internal/config"
	"github.com/quickwick/rpgvault/internal/metadata"
)

// fetchDetails is one detail fetch task: fetch the candidate's document,
// extract every field independently, and push a record to the sink. It never
// returns an error; every failure is logged and absorbed so one bad
// candidate cannot abort the batch.
func (s *Source) fetchDetails(ctx context.Context, candidate catalog.Candidate, opts config.Options, sink *metadata.Queue, wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Detail fetch panicked", "url", candidate.URL, "panic", r)
		}
	}()

	// Cancellation stops the coordinator from waiting but never aborts an
	// in-flight fetch, so the request context is detached from ctx. The
	// client's own timeout bounds the call. Each task fetches on a clone so
	// connection state is not shared.
	client := s.client.Clone()
	doc, err := client.FetchDocument(context.WithoutCancel(ctx), candidate.URL)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			slog.Error("URL malformed", "url", candidate.URL)
		case catalog.IsTimeout(err):
			slog.Error(s.Vendor().Name+" timed out. Try again later.", "url", candidate.URL)
		case errors.Is(err, catalog.ErrEmptyResponse):
			slog.Error("Empty response for details query", "url", candidate.URL)
		default:
			slog.Error("Failed to make details query", "url", candidate.URL, "error", err)
		}
		return
	}

	// Guard against an error page or unrelated payload served with a 200.
	if !doc.HasProductName() {
		slog.Error("No product name in document", "url", candidate.URL)
		return
	}

	id, ok := catalog.ExtractProductID(candidate.URL)
	if !ok {
		slog.Error("No product identifier in URL", "url", candidate.URL)
	}

	title, err := catalog.ParseTitle(doc)
	if err != nil {
		slog.Error("Error parsing title", "url", candidate.URL, "error", err)
	}

	authors, err := catalog.ParseAuthors(doc, catalog.AuthorRoles{
		Artists:      opts.ArtistsAsAuthors,
		Editors:      opts.EditorsAsAuthors,
		Contributors: opts.ContributorsAsAuthors,
	})
	if err != nil {
		slog.Error("Error parsing authors", "url", candidate.URL, "error", err)
	}

	if title == "" || len(authors) == 0 || id == "" {
		slog.Error("Could not find title/authors/identifier",
			"url", candidate.URL, "id", id, "title", title, "authors", authors)
		return
	}

	record := metadata.Record{
		Title:     title,
		Authors:   authors,
		Source:    s.Vendor().IDKey,
		VendorID:  id,
		Relevance: candidate.Relevance,
	}

	if isbn, err := catalog.ParseISBN(doc); err != nil {
		slog.Error("Error parsing ISBN", "url", candidate.URL, "error", err)
	} else {
		record.ISBN = isbn
	}

	if comments, err := catalog.ParseComments(doc); err != nil {
		slog.Error("Error parsing comments", "url", candidate.URL, "error", err)
	} else {
		record.Comments = comments
	}

	if coverURL, err := catalog.ParseCoverURL(doc, s.Vendor()); err != nil {
		slog.Error("Error parsing cover", "url", candidate.URL, "error", err)
	} else {
		record.CoverURL = coverURL
	}

	if tags, err := catalog.ParseTags(doc, catalog.TagSources{
		Categories: opts.CategoriesAsTags,
		Filters:    opts.FiltersAsTags,
	}); err != nil {
		slog.Error("Error parsing tags", "url", candidate.URL, "error", err)
	} else {
		record.Tags = tags
	}

	if pubDate, err := catalog.ParsePublishDate(doc); err != nil {
		slog.Error("Error parsing publish date", "url", candidate.URL, "error", err)
	} else {
		record.PubDate = pubDate
	}

	if publisher, err := catalog.ParsePublisher(doc); err != nil {
		slog.Error("Error parsing publisher", "url", candidate.URL, "error", err)
	} else {
		record.Publisher = publisher
	}

	if record.ISBN != "" {
		s.cache.SetIdentifierForISBN(record.ISBN, record.VendorID)
	}
	if record.CoverURL != "" {
		s.cache.SetCoverURLForIdentifier(record.VendorID, record.CoverURL)
	}

	if s.normalize != nil {
		s.normalize(&record)
	}

	slog.Info("Adding record to result sink", "id", record.VendorID, "title", record.Title)
	sink.Push(record)
}
