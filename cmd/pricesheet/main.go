package main

// Parse a vendor PDF price sheet into catalog entries:
//   go run ./cmd/pricesheet -file sheet.pdf -category invoicing
//
// With -save and DATABASE_URL set, the parsed entries are stored in the
// catalog.

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"advisor-backend/internal/catalog"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/storage/db"
)

func main() {
	file := flag.String("file", "", "path to the PDF price sheet")
	category := flag.String("category", "", "finding category to file entries under")
	save := flag.Bool("save", false, "store parsed entries in the catalog")
	flag.Parse()

	if *file == "" || *category == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read price sheet: %v", err)
	}

	result, err := catalog.ImportPriceSheet(data, *category, filepath.Base(*file))
	if err != nil {
		log.Fatalf("parse price sheet: %v", err)
	}
	for _, line := range result.Skipped {
		log.Printf("skipped: %s", line)
	}

	if *save {
		cfg := config.Load()
		ctx := context.Background()
		opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		defer sqlDB.Close()
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			log.Fatalf("run migrations: %v", err)
		}

		svc := &catalog.Service{Repo: &catalog.PGRepo{DB: sqlDB}}
		for _, entry := range result.Entries {
			stored, err := svc.Add(ctx, entry)
			if err != nil {
				log.Fatalf("store entry %q: %v", entry.Option.Name, err)
			}
			log.Printf("stored %s (%s)", stored.Option.Name, stored.ID)
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Entries); err != nil {
		log.Fatalf("encode entries: %v", err)
	}
}
