// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model and per-stage configuration
// for the wikiquote pipeline.
package types

// Page is one logical article reconstructed from the dump: its title and
// raw wikitext body. Pages are transient; the reader hands each one to the
// extractor and never retains it.
type Page struct {
	// Title is the article title as it appears in the dump.
	Title string `json:"title" yaml:"title"`

	// Content is the raw wikitext of the article's latest revision.
	Content string `json:"content" yaml:"content"`
}

// Record is one extracted attribution: a cleaned quote, the attributed
// author, and the title of the page it came from. Field order is the wire
// order for export.
type Record struct {
	// Quote is the cleaned quote text. Always longer than the minimum
	// length gate after cleaning.
	Quote string `json:"quote" yaml:"quote"`

	// Author is the attributed author, or the source title when no
	// attribution line followed the quote.
	Author string `json:"author" yaml:"author"`

	// Source is the title of the page the quote was extracted from.
	Source string `json:"source" yaml:"source"`
}
