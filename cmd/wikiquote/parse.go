// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirshahdadian/wikiquote-voice-search/internal/dump"
	"github.com/amirshahdadian/wikiquote-voice-search/internal/quotes"
	"github.com/amirshahdadian/wikiquote-voice-search/internal/wikitext"
	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Stream a Wikiquote XML dump and extract attributed quotes",
	Long: `Parse streams the pages-articles XML dump one page at a time, applies
the quote and author recognition rules to each article, and writes the
extracted (quote, author, source) records to a JSON or YAML file.

Redirect pages and namespaced pages (titles containing ":") are skipped.
Use --limit to process only the first N pages of a large dump.`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := parseConfig(cmd)
	if cfg.DumpFile == "" {
		return fmt.Errorf("dump file required: pass --dump or set parse.dump_file")
	}

	in, err := os.Open(cfg.DumpFile)
	if err != nil {
		return fmt.Errorf("opening dump: %w", err)
	}
	defer in.Close()

	logger.Info().Str("dump", cfg.DumpFile).Int("limit", cfg.PageLimit).
		Msg("starting to parse dump")

	extractor := wikitext.NewExtractor(wikitext.DefaultPatterns())
	records, err := dump.ExtractAll(cmd.Context(), in, extractor, cfg.PageLimit, logger)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No quotes were extracted.")
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "":
		err = quotes.SaveJSON(cfg.QuotesFile, records)
	case "yaml":
		err = quotes.SaveYAML(cfg.QuotesFile, records)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return err
	}

	summary := quotes.Summarize(records)
	fmt.Printf("Quotes extracted: %d\n", summary.Quotes)
	fmt.Printf("Unique authors:   %d\n", summary.Authors)
	fmt.Printf("Unique sources:   %d\n", summary.Sources)
	fmt.Printf("Output saved to:  %s\n", cfg.QuotesFile)

	fmt.Println("\nSample quotes:")
	for i, r := range records {
		if i == 3 {
			break
		}
		fmt.Printf("%d. %q - %s (from %s)\n", i+1, r.Quote, r.Author, r.Source)
	}
	return nil
}

func parseConfig(cmd *cobra.Command) types.ParseConfig {
	return types.ParseConfig{
		DumpFile:   stringSetting(cmd, "dump", "parse.dump_file", ""),
		QuotesFile: stringSetting(cmd, "out", "parse.quotes_file", "extracted_quotes.json"),
		PageLimit:  intSetting(cmd, "limit", "parse.page_limit", 0),
	}
}

func init() {
	parseCmd.Flags().String("dump", "", "path to the pages-articles XML dump")
	parseCmd.Flags().String("out", "", "output path for extracted quotes (default extracted_quotes.json)")
	parseCmd.Flags().Int("limit", 0, "stop after processing this many pages (0 = whole dump)")
	parseCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(parseCmd)
}
