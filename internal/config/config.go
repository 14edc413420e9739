// Package config exposes the lookup options backed by viper.
package config

import "github.com/spf13/viper"

// Viper keys for the folding options.
const (
	KeyCategoriesAsTags      = "source.categories_as_tags"
	KeyFiltersAsTags         = "source.filters_as_tags"
	KeyArtistsAsAuthors      = "source.artists_as_authors"
	KeyEditorsAsAuthors      = "source.editors_as_authors"
	KeyContributorsAsAuthors = "source.contributors_as_authors"
)

// Options is a snapshot of the folding flags taken at lookup time. Flags are
// re-read from viper on every lookup, so changes take effect on the next one.
// Plain bools by construction: no indeterminate checkbox state can exist.
type Options struct {
	CategoriesAsTags      bool
	FiltersAsTags         bool
	ArtistsAsAuthors      bool
	EditorsAsAuthors      bool
	ContributorsAsAuthors bool
}

// SetDefaults registers the default option values with viper. Categories and
// filters fold into tags by default; contributor roles stay out of authors.
func SetDefaults() {
	viper.SetDefault(KeyCategoriesAsTags, true)
	viper.SetDefault(KeyFiltersAsTags, true)
	viper.SetDefault(KeyArtistsAsAuthors, false)
	viper.SetDefault(KeyEditorsAsAuthors, false)
	viper.SetDefault(KeyContributorsAsAuthors, false)
}

// FromViper reads the current option values.
func FromViper() Options {
	return Options{
		CategoriesAsTags:      viper.GetBool(KeyCategoriesAsTags),
		FiltersAsTags:         viper.GetBool(KeyFiltersAsTags),
		ArtistsAsAuthors:      viper.GetBool(KeyArtistsAsAuthors),
		EditorsAsAuthors:      viper.GetBool(KeyEditorsAsAuthors),
		ContributorsAsAuthors: viper.GetBool(KeyContributorsAsAuthors),
	}
}
