//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

// Parse extracts quotes from the configured dump into extracted_quotes.json.
// Set WIKIQUOTE_DUMP to override the dump path.
func Parse() error {
	mg.Deps(Init)
	args := []string{"parse"}
	if dump := os.Getenv("WIKIQUOTE_DUMP"); dump != "" {
		args = append(args, "--dump", dump)
	}
	return runBinary(args...)
}

// Populate loads extracted quotes into the SQLite database at index/quotes.db.
func Populate() error {
	mg.Deps(Init)
	return runBinary("populate")
}
