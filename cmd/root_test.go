package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/quickwick/rpgvault/internal/config"
	"github.com/quickwick/rpgvault/internal/testutil"
)

func TestUpdateGlobalConfig(t *testing.T) {
	testutil.ResetConfig(t)

	cli := &CLI{
		ArtistsAsAuthors: true,
		CategoriesAsTags: false,
		FiltersAsTags:    true,
		XrefDB:           "/tmp/xref-test.db",
	}

	updateGlobalConfig(cli)

	opts := config.FromViper()
	require.True(t, opts.ArtistsAsAuthors)
	require.False(t, opts.CategoriesAsTags)
	require.True(t, opts.FiltersAsTags)
	require.Equal(t, "/tmp/xref-test.db", viper.GetString("xref.dbfile"))
}

func TestBuildSource_UnknownVendor(t *testing.T) {
	testutil.ResetConfig(t)

	_, _, err := buildSource(&CLI{Vendor: "dmsguild"})
	require.Error(t, err)
}

func TestBuildSource_KnownVendor(t *testing.T) {
	testutil.ResetConfig(t)
	viper.Set("xref.dbfile", filepath.Join(t.TempDir(), "xref.db"))

	src, store, err := buildSource(&CLI{Vendor: "wargamevault", Timeout: 0})
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.Equal(t, "wargamevault", src.Vendor().IDKey)
}

func TestIdentifyCmd_RequiresIDOrTitle(t *testing.T) {
	testutil.ResetConfig(t)

	cmd := &IdentifyCmd{}
	err := cmd.Run(&CLI{Vendor: "drivethrurpg"})
	require.Error(t, err)
}

func TestCoverCmd_RequiresHint(t *testing.T) {
	testutil.ResetConfig(t)

	cmd := &CoverCmd{}
	err := cmd.Run(&CLI{Vendor: "drivethrurpg"})
	require.Error(t, err)
}
