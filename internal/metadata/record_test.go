package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByRelevance(t *testing.T) {
	records := []Record{
		{Title: "third", Relevance: 2},
		{Title: "first", Relevance: 0},
		{Title: "second", Relevance: 1},
	}

	SortByRelevance(records)

	require.Equal(t, "first", records[0].Title)
	require.Equal(t, "second", records[1].Title)
	require.Equal(t, "third", records[2].Title)
}

func TestSortByRelevance_StableOnTies(t *testing.T) {
	records := []Record{
		{Title: "a", Relevance: 1},
		{Title: "b", Relevance: 1},
		{Title: "c", Relevance: 0},
	}

	SortByRelevance(records)

	require.Equal(t, []string{"c", "a", "b"}, []string{records[0].Title, records[1].Title, records[2].Title})
}

func TestClean(t *testing.T) {
	record := Record{
		Title:     "  Shadow   of the\tWeird Wizard ",
		Authors:   []string{" Robert J Schwalb ", "", "  "},
		Tags:      []string{" Fantasy ", ""},
		Publisher: " Schwalb Entertainment ",
		ISBN:      " 978-1 ",
	}

	Clean(&record)

	require.Equal(t, "Shadow of the Weird Wizard", record.Title)
	require.Equal(t, []string{"Robert J Schwalb"}, record.Authors)
	require.Equal(t, []string{"Fantasy"}, record.Tags)
	require.Equal(t, "Schwalb Entertainment", record.Publisher)
	require.Equal(t, "978-1", record.ISBN)
}

func TestClean_AllAuthorsEmpty(t *testing.T) {
	record := Record{Title: "t", Authors: []string{" ", ""}}
	Clean(&record)
	require.Nil(t, record.Authors)
}
