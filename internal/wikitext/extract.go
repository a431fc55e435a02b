// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikitext

import (
	"strings"
	"unicode/utf8"

	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

// authorLookahead is how many lines past a quote the resolver inspects
// for an attribution. Attributions appear immediately or one line after
// the quote; anything further is unrelated.
const authorLookahead = 2

// minQuoteLen is the exclusive lower bound on cleaned quote length.
// Shorter captures are fragments of markup, not quotes.
const minQuoteLen = 10

// Extractor scans one page's wikitext for attributed quotes.
type Extractor struct {
	patterns PatternSet
}

// NewExtractor returns an Extractor using the given rule set.
func NewExtractor(patterns PatternSet) *Extractor {
	return &Extractor{patterns: patterns}
}

// Extract returns the attribution records found in content, in source
// order. source is the page title; it doubles as the fallback author when
// no attribution line follows a quote. Candidates whose cleaned text is
// too short, or that end up with no author at all, are dropped.
func (e *Extractor) Extract(content, source string) []types.Record {
	lines := strings.Split(content, "\n")

	var records []types.Record
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if line == "" || strings.HasPrefix(line, "=") || strings.HasPrefix(line, "#") {
			continue
		}

		raw, ok := e.patterns.MatchQuote(line)
		if !ok {
			continue
		}
		quote := Clean(raw)

		author, found := e.resolveAuthor(lines, i)
		if !found {
			author = source
		}

		if utf8.RuneCountInString(quote) > minQuoteLen && author != "" {
			records = append(records, types.Record{
				Quote:  quote,
				Author: author,
				Source: source,
			})
		}
	}

	return records
}

// resolveAuthor scans at most authorLookahead lines after start for an
// attribution. The window is walked nearest line first; within a line the
// author rules are tried in order, and the first line yielding any match
// settles the resolution. A capture that cleans to nothing does not count
// as a match.
func (e *Extractor) resolveAuthor(lines []string, start int) (string, bool) {
	end := start + authorLookahead
	if end >= len(lines) {
		end = len(lines) - 1
	}

	for j := start + 1; j <= end; j++ {
		raw, ok := e.patterns.MatchAuthor(strings.TrimSpace(lines[j]))
		if !ok {
			continue
		}
		if author := Clean(raw); author != "" {
			return author, true
		}
	}
	return "", false
}
