// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParseConfig holds settings for the dump parsing stage.
type ParseConfig struct {
	// DumpFile is the path to the pages-articles XML dump.
	DumpFile string `json:"dump_file" yaml:"dump_file"`

	// QuotesFile is the output path for the extracted record list.
	QuotesFile string `json:"quotes_file" yaml:"quotes_file"`

	// PageLimit bounds how many pages are processed. Zero means
	// unbounded; the whole dump is read.
	PageLimit int `json:"page_limit" yaml:"page_limit"`
}

// StoreConfig holds settings for the persistence stage.
type StoreConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `json:"db_path" yaml:"db_path"`

	// BatchSize is the number of records loaded per transaction
	// (default 1000).
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `json:"db_path" yaml:"db_path"`

	// SearchLimit is the default maximum number of results (default 5).
	SearchLimit int `json:"search_limit" yaml:"search_limit"`
}
