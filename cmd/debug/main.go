package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/database"
	"github.com/osse101/CraftValue_Go/internal/database/postgres"
	"github.com/osse101/CraftValue_Go/internal/dataset"
)

// Inspects the datasets stored in Postgres: lists them, dumps one, or deletes one.
func main() {
	name := flag.String("name", "", "Dump the named dataset as YAML")
	remove := flag.String("delete", "", "Delete the named dataset")
	flag.Parse()

	cfg, err := config.LoadDiscord()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewDatasetRepository(pool)

	switch {
	case *remove != "":
		if err := repo.DeleteDataset(ctx, *remove); err != nil {
			log.Fatalf("Failed to delete %s: %v", *remove, err)
		}
		fmt.Printf("Deleted dataset %s\n", *remove)

	case *name != "":
		record, err := repo.GetDataset(ctx, *name)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *name, err)
		}
		loader, err := dataset.NewLoader(nil)
		if err != nil {
			log.Fatalf("Failed to create loader: %v", err)
		}
		doc, err := loader.Encode(record.Dataset, dataset.FormatYAML)
		if err != nil {
			log.Fatalf("Failed to encode %s: %v", *name, err)
		}
		fmt.Printf("# %s revision %d, updated %s\n", record.Name, record.Revision, record.UpdatedAt.Format(time.RFC3339))
		fmt.Print(string(doc))

	default:
		summaries, err := repo.ListDatasets(ctx)
		if err != nil {
			log.Fatalf("Failed to list datasets: %v", err)
		}
		fmt.Println("--- Stored Datasets ---")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tREVISION\tMATERIALS\tRECIPES\tUPDATED")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", s.Name, s.Revision, s.Materials, s.Recipes, s.UpdatedAt.Format(time.RFC3339))
		}
		w.Flush()
	}
}
