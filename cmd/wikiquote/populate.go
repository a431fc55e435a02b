// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirshahdadian/wikiquote-voice-search/internal/quotes"
	"github.com/amirshahdadian/wikiquote-voice-search/internal/store"
	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Load extracted quotes into the SQLite database",
	Long: `Populate reads the extracted quote records and loads them into a SQLite
database with a full-text index. Authors and sources are deduplicated by
exact name; quote rows are always inserted, since the same quote can
appear under different attributions.

Records are loaded in batches; use --batch-size to tune transaction size
and --reset to clear existing data first.`,
	RunE: runPopulate,
}

func runPopulate(cmd *cobra.Command, args []string) error {
	quotesFile := stringSetting(cmd, "quotes", "parse.quotes_file", "extracted_quotes.json")
	cfg := types.StoreConfig{
		DBPath:    stringSetting(cmd, "db", "store.db_path", "index/quotes.db"),
		BatchSize: intSetting(cmd, "batch-size", "store.batch_size", 0),
	}

	records, err := quotes.Load(quotesFile)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no quotes in %s: run parse first", quotesFile)
	}

	s, err := store.NewStore(cfg, 0, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()

	if reset, _ := cmd.Flags().GetBool("reset"); reset {
		if err := s.Reset(ctx); err != nil {
			return err
		}
	}

	summary, err := s.LoadRecords(ctx, records)
	if err != nil {
		return err
	}
	logger.Info().Int("quotes", summary.Loaded).Int("batches", summary.Batches).
		Msg("database population completed")

	stats, err := s.GetStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Authors: %d\n", stats.Authors)
	fmt.Printf("Quotes:  %d\n", stats.Quotes)
	fmt.Printf("Sources: %d\n", stats.Sources)
	return nil
}

func init() {
	populateCmd.Flags().String("quotes", "", "path to the extracted quotes JSON (default extracted_quotes.json)")
	populateCmd.Flags().String("db", "", "SQLite database path (default index/quotes.db)")
	populateCmd.Flags().Int("batch-size", 0, "records per transaction (default 1000)")
	populateCmd.Flags().Bool("reset", false, "clear existing quotes, authors, and sources first")

	rootCmd.AddCommand(populateCmd)
}
