package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// The extractors below each read exactly one field from a product document
// and fail independently: a missing or malformed field yields an error for
// that extractor only, never for its siblings. Callers log and drop the
// field on error.

// AuthorRoles selects which contributor categories are folded into the
// authors list, in addition to the base authors.
type AuthorRoles struct {
	Artists      bool
	Editors      bool
	Contributors bool
}

// TagSources selects which included side-entities are folded into tags.
type TagSources struct {
	Categories bool
	Filters    bool
}

var errFieldAbsent = errors.New("field absent")

func (a ProductAttributes) description() (productDescription, error) {
	if len(a.Description) == 0 {
		return productDescription{}, fmt.Errorf("description: %w", errFieldAbsent)
	}
	var desc productDescription
	if err := json.Unmarshal(a.Description, &desc); err != nil {
		return productDescription{}, fmt.Errorf("description: %w", err)
	}
	return desc, nil
}

// HasProductName reports whether the document carries a product name in its
// nested description. Documents without one are error pages or unrelated
// payloads served with HTTP 200 and must not be parsed further.
func (doc *ProductDocument) HasProductName() bool {
	desc, err := doc.Data.Attributes.description()
	return err == nil && desc.Name != ""
}

// ParseTitle extracts the product title: the description name, trimmed,
// with stray angle-bracket characters removed.
func ParseTitle(doc *ProductDocument) (string, error) {
	desc, err := doc.Data.Attributes.description()
	if err != nil {
		return "", err
	}
	if desc.Name == "" {
		return "", errors.New("no title found")
	}
	return strings.TrimSpace(strings.ReplaceAll(desc.Name, ">", "")), nil
}

// ParseComments extracts the free-text description. An empty description is
// not an error; the field is simply unset.
func ParseComments(doc *ProductDocument) (string, error) {
	desc, err := doc.Data.Attributes.description()
	if err != nil {
		return "", err
	}
	return desc.Description, nil
}

func stringList(raw json.RawMessage, field string) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", field, errFieldAbsent)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return list, nil
}

func stringField(raw json.RawMessage, field string) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%s: %w", field, errFieldAbsent)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return s, nil
}

// ParseAuthors extracts the author list, unioning in artists, editors and
// contributors per roles, in that fixed order. The base authors field is
// required; a role list that is absent contributes nothing. An empty union
// falls back to the single placeholder entry "Unknown".
func ParseAuthors(doc *ProductDocument, roles AuthorRoles) ([]string, error) {
	attrs := doc.Data.Attributes

	authors, err := stringList(attrs.Authors, "authors")
	if err != nil {
		return nil, err
	}

	if roles.Artists {
		if artists, err := stringList(attrs.Artists, "artists"); err == nil {
			authors = append(authors, artists...)
		}
	}
	if roles.Editors {
		if editors, err := stringList(attrs.Editors, "editors"); err == nil {
			authors = append(authors, editors...)
		}
	}
	if roles.Contributors {
		if contributors, err := stringList(attrs.Contributors, "contributors"); err == nil {
			authors = append(authors, contributors...)
		}
	}

	if len(authors) == 0 {
		authors = []string{"Unknown"}
	}

	return authors, nil
}

// ParseISBN extracts the ISBN. An empty ISBN is not an error.
func ParseISBN(doc *ProductDocument) (string, error) {
	return stringField(doc.Data.Attributes.ISBN, "isbn")
}

// ParseCoverURL builds the cover image URL by joining the vendor's CDN
// prefix with the document's relative image field.
func ParseCoverURL(doc *ProductDocument, vendor Vendor) (string, error) {
	image, err := stringField(doc.Data.Attributes.Image, "image")
	if err != nil {
		return "", err
	}
	if image == "" {
		return "", nil
	}
	return vendor.CoverURL(image), nil
}

var publishDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsePublishDate extracts the publication date from the ISO-8601
// dateCreated field. An empty field yields a zero time without error.
func ParsePublishDate(doc *ProductDocument) (time.Time, error) {
	value, err := stringField(doc.Data.Attributes.DateCreated, "dateCreated")
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range publishDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("dateCreated %q: %w", value, lastErr)
}

// ParsePublisher returns the name of the first included side-entity typed
// "Publisher", or empty when the document has none.
func ParsePublisher(doc *ProductDocument) (string, error) {
	for _, entity := range doc.Included {
		if entity.Type == "Publisher" {
			return entity.Attributes.Name, nil
		}
	}
	return "", nil
}

// ParseTags collects tags from included side-entities typed "Category" or
// "Filter" per sources, preserving encounter order. Each entity contributes
// its first localized description name, with the HTML apostrophe entity
// decoded.
func ParseTags(doc *ProductDocument, sources TagSources) ([]string, error) {
	var tags []string
	for _, entity := range doc.Included {
		use := (sources.Categories && entity.Type == "Category") ||
			(sources.Filters && entity.Type == "Filter")
		if !use || len(entity.Attributes.Descriptions) == 0 {
			continue
		}
		name := entity.Attributes.Descriptions[0].Name
		tags = append(tags, strings.ReplaceAll(name, "&#039;", "'"))
	}
	return tags, nil
}
