// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirshahdadian/wikiquote-voice-search/internal/store"
	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search the quote database",
	Long: `Search queries the populated quote database. Free text arguments run a
full-text search over quote text with prefix matching on the last term,
ranked by relevance. Use --author or --source for substring searches
over attributions instead.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := types.SearchConfig{
		DBPath:      stringSetting(cmd, "db", "store.db_path", "index/quotes.db"),
		SearchLimit: intSetting(cmd, "limit", "search.search_limit", 0),
	}
	author, _ := cmd.Flags().GetString("author")
	source, _ := cmd.Flags().GetString("source")
	term := strings.Join(args, " ")

	if term == "" && author == "" && source == "" {
		return fmt.Errorf("query required: provide search terms, --author, or --source")
	}

	s, err := store.NewStore(types.StoreConfig{DBPath: cfg.DBPath}, cfg.SearchLimit, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()

	var results []store.SearchResult
	switch {
	case term != "":
		results, err = s.Autocomplete(ctx, term, cfg.SearchLimit)
	case author != "":
		results, err = s.SearchByAuthor(ctx, author, cfg.SearchLimit)
	default:
		results, err = s.SearchBySource(ctx, source, cfg.SearchLimit)
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No quotes found.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. %q\n", i+1, r.Quote)
		fmt.Printf("   - %s (from %s)\n", r.Author, r.Source)
	}
	fmt.Printf("\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().String("db", "", "SQLite database path (default index/quotes.db)")
	searchCmd.Flags().Int("limit", 0, "maximum results (default 5)")
	searchCmd.Flags().String("author", "", "substring search over author names")
	searchCmd.Flags().String("source", "", "substring search over source titles")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
