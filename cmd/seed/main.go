package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/library-admin/activity"
	"github.com/marcelsud/library-admin/author"
	"github.com/marcelsud/library-admin/book"
	"github.com/marcelsud/library-admin/config"
	"github.com/marcelsud/library-admin/fixtures"
	"github.com/marcelsud/library-admin/storage"
)

/* seed - loads a fixtures file into the configured database
 * Usage: go run cmd/seed/main.go [fixtures.yaml]
 * Existing authors (same email) and books (same ISBN) are skipped, so it can run repeatedly
 */

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fixturesFile := cfg.FixturesFile
	if len(os.Args) > 1 {
		fixturesFile = os.Args[1]
	}

	loader := fixtures.NewLoader()
	if err := loader.Load(fixturesFile); err != nil {
		return err
	}
	fmt.Printf("📄 Loaded %d author(s) and %d book(s) from %s\n", len(loader.List()), loader.BookCount(), fixturesFile)

	ctx := context.Background()
	fmt.Printf("🔗 Connecting to %s...\n", cfg.DBDriver)
	store, err := storage.Open(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close(ctx)

	if err := store.CreateSchema(ctx); err != nil {
		return err
	}
	fmt.Println("✅ Schema ready")

	authorRepo := store.Authors()
	res, err := loader.Apply(ctx,
		author.NewService(authorRepo, activity.Discard),
		book.NewService(store.Books(), authorRepo, activity.Discard),
	)
	if err != nil {
		return fmt.Errorf("applying fixtures: %w", err)
	}

	fmt.Printf("✅ Created %d author(s) and %d book(s)\n", res.Authors, res.Books)
	if res.SkippedAuthors > 0 || res.SkippedBooks > 0 {
		fmt.Printf("⏭️  Skipped %d author(s) and %d book(s) already stored\n", res.SkippedAuthors, res.SkippedBooks)
	}
	return nil
}
