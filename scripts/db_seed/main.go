package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	dbfs "github.com/nightset/nightset/db"
	"github.com/nightset/nightset/internal/config"
	"github.com/nightset/nightset/internal/db"
	"github.com/nightset/nightset/internal/repository/sqlite"
	"github.com/nightset/nightset/internal/seed"
	"github.com/nightset/nightset/internal/service"
)

// Loads a seed dataset through the service layer. Without -file (or
// seed_path in the config) the embedded demo dataset is used.
func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	var seedFile = flag.String("file", "", "Seed JSON file (defaults to the embedded demo dataset)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.Logger()
	database, err := db.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	path := *seedFile
	if path == "" {
		path = cfg.SeedPath
	}

	var ds *seed.Dataset
	if path != "" {
		ds, err = seed.ParseFile(ctx, path)
	} else {
		ds, err = seed.ParseEmbedded(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	store := service.New(sqlite.New(database, logger), logger)
	sum, err := seed.Apply(ctx, ds, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed applied: %d users, %d events, %d playlists.\n", sum.Users, sum.Events, sum.Playlists)
}
