// Package cmd wires the rpgvault CLI: metadata lookups against the
// DriveThruRPG / WarGameVault catalog API.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/quickwick/rpgvault/internal/catalog"
	"github.com/quickwick/rpgvault/internal/config"
	"github.com/quickwick/rpgvault/internal/fileutil"
	"github.com/quickwick/rpgvault/internal/metadata"
	"github.com/quickwick/rpgvault/internal/source"
	"github.com/quickwick/rpgvault/internal/xref"
)

// CLI represents the complete command structure for the rpgvault application.
type CLI struct {
	// Global flags
	Vendor  string        `help:"Storefront to query (drivethrurpg or wargamevault)" default:"drivethrurpg"`
	Timeout time.Duration `help:"Per-request timeout" default:"20s"`
	XrefDB  string        `help:"Path to the cross-reference SQLite database" default:"./xref.db"`

	// Folding options; these override the config file for this invocation
	ArtistsAsAuthors      bool `help:"Fold artists into the authors list" negatable:""`
	EditorsAsAuthors      bool `help:"Fold editors into the authors list" negatable:""`
	ContributorsAsAuthors bool `help:"Fold contributors into the authors list" negatable:""`
	CategoriesAsTags      bool `help:"Fold catalog categories into tags" default:"true" negatable:""`
	FiltersAsTags         bool `help:"Fold catalog filters into tags" default:"true" negatable:""`

	Identify IdentifyCmd `cmd:"" help:"Look up metadata by product id or title search"`
	Cover    CoverCmd    `cmd:"" help:"Resolve and download a cover image"`
	Cache    CacheCmd    `cmd:"" help:"Manage the cross-reference cache"`
}

// IdentifyCmd looks up metadata records and prints them as JSON.
type IdentifyCmd struct {
	ID     string   `help:"Product identifier (skips the search)"`
	Title  string   `short:"t" help:"Title to search for"`
	Author []string `short:"a" help:"Author name hint"`
	ISBN   string   `help:"ISBN hint"`
}

// CoverCmd resolves a cover image and writes it to a file.
type CoverCmd struct {
	ID     string `help:"Product identifier"`
	Title  string `short:"t" help:"Title to search for"`
	ISBN   string `help:"ISBN hint"`
	Output string `short:"o" help:"Path to write the cover image to" default:"cover.jpg"`
}

// CacheCmd manages the cross-reference cache.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove all cached cross-references for the vendor"`
}

// CacheClearCmd truncates the vendor's cross-reference entries.
type CacheClearCmd struct{}

// Execute runs the Kong-based CLI.
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("rpgvault"),
		kong.Description("Look up tabletop RPG and wargaming product metadata from DriveThruRPG and WarGameVault."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(&cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func initConfig() {
	config.SetDefaults()
	viper.SetDefault("xref.dbfile", "./xref.db")

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}
}

func updateGlobalConfig(cli *CLI) {
	viper.Set(config.KeyArtistsAsAuthors, cli.ArtistsAsAuthors)
	viper.Set(config.KeyEditorsAsAuthors, cli.EditorsAsAuthors)
	viper.Set(config.KeyContributorsAsAuthors, cli.ContributorsAsAuthors)
	viper.Set(config.KeyCategoriesAsTags, cli.CategoriesAsTags)
	viper.Set(config.KeyFiltersAsTags, cli.FiltersAsTags)
	viper.Set("xref.dbfile", cli.XrefDB)
}

func buildSource(cli *CLI) (*source.Source, *xref.SQLiteStore, error) {
	vendor, err := catalog.VendorByKey(cli.Vendor)
	if err != nil {
		return nil, nil, err
	}

	store, err := xref.OpenSQLiteStore(viper.GetString("xref.dbfile"), vendor.IDKey)
	if err != nil {
		return nil, nil, err
	}

	src := source.New(vendor, store,
		source.WithClient(catalog.NewClient(vendor, catalog.WithTimeout(cli.Timeout))),
	)
	return src, store, nil
}

// Run executes the identify command.
func (c *IdentifyCmd) Run(cli *CLI) error {
	if c.ID == "" && c.Title == "" {
		return fmt.Errorf("either --id or --title is required")
	}

	src, store, err := buildSource(cli)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sink := metadata.NewQueue()
	query := source.Query{VendorID: c.ID, Title: c.Title, Authors: c.Author, ISBN: c.ISBN}
	if err := src.Identify(context.Background(), query, sink); err != nil {
		return err
	}

	records := sink.Drain()
	metadata.SortByRelevance(records)
	if len(records) == 0 {
		slog.Info("No results")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the cover command.
func (c *CoverCmd) Run(cli *CLI) error {
	if c.ID == "" && c.Title == "" && c.ISBN == "" {
		return fmt.Errorf("one of --id, --title or --isbn is required")
	}

	src, store, err := buildSource(cli)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	query := source.Query{VendorID: c.ID, Title: c.Title, ISBN: c.ISBN}
	data, err := src.DownloadCover(context.Background(), query)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		slog.Info("No cover found")
		return nil
	}

	return fileutil.WriteCover(c.Output, data)
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(cli *CLI) error {
	vendor, err := catalog.VendorByKey(cli.Vendor)
	if err != nil {
		return err
	}

	store, err := xref.OpenSQLiteStore(viper.GetString("xref.dbfile"), vendor.IDKey)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return store.Clear()
}
