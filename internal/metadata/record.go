// Package metadata defines the normalized record produced by a lookup and
// the concurrent result sink the fetch tasks push into.
package metadata

import (
	"sort"
	"strings"
	"time"
)

// Record is the normalized metadata for one product. Once pushed to a Queue
// the record is owned by the consumer and is not mutated further.
type Record struct {
	// Title is the product title. Always present in an emitted record.
	Title string `json:"title"`
	// Authors is never empty in an emitted record; sources without authors
	// yield the single placeholder entry "Unknown".
	Authors []string `json:"authors"`
	// Source is the identifier namespace (e.g. "drivethrurpg").
	Source string `json:"source"`
	// VendorID is the numeric product identifier within Source.
	VendorID string `json:"vendor_id"`

	ISBN      string    `json:"isbn,omitempty"`
	Comments  string    `json:"comments,omitempty"`
	Publisher string    `json:"publisher,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	PubDate   time.Time `json:"pubdate,omitzero"`

	// Relevance is the record's rank in the originating search results;
	// 0 is the most relevant. Arrival order in the sink is nondeterministic,
	// so consumers re-sort on this.
	Relevance int `json:"relevance"`
}

// Normalizer is a post-processing hook applied to every successfully built
// record before it is pushed to the sink.
type Normalizer func(*Record)

// Clean is the default normalizer: it collapses stray whitespace and drops
// empty author and tag entries.
func Clean(r *Record) {
	r.Title = strings.Join(strings.Fields(r.Title), " ")
	r.Authors = cleanList(r.Authors)
	r.Tags = cleanList(r.Tags)
	r.Publisher = strings.TrimSpace(r.Publisher)
	r.ISBN = strings.TrimSpace(r.ISBN)
}

func cleanList(values []string) []string {
	cleaned := values[:0]
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

// SortByRelevance orders records most-relevant first. The sort is stable so
// records with equal rank keep their arrival order.
func SortByRelevance(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Relevance < records[j].Relevance
	})
}
