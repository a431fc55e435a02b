// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikitext recognizes quote attributions in raw wiki markup.
// It owns the markup cleaner, the ordered pattern set, and the
// line-scanning extractor.
package wikitext

import (
	"regexp"
	"strings"
)

var (
	labeledLink  = regexp.MustCompile(`\[\[[^\]|]*\|([^\]]+)\]\]`)
	bareLink     = regexp.MustCompile(`\[\[([^\]|]+)\]\]`)
	externalLink = regexp.MustCompile(`\[([^\]]+)\]`)
	boldMarkup   = regexp.MustCompile(`'''([^']+)'''`)
	italicMarkup = regexp.MustCompile(`''([^']+)''`)
	htmlTag      = regexp.MustCompile(`<[^>]+>`)
)

var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// Clean strips wiki markup decoration from a text fragment: internal links
// reduce to their label (or target when unlabeled), external link brackets
// and bold/italic quoting are removed, the four common HTML entities are
// decoded, leftover tags are dropped, and whitespace runs collapse to
// single spaces. Clean is idempotent and returns "" for empty input.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = labeledLink.ReplaceAllString(text, "$1")
	text = bareLink.ReplaceAllString(text, "$1")
	text = externalLink.ReplaceAllString(text, "$1")
	text = boldMarkup.ReplaceAllString(text, "$1")
	text = italicMarkup.ReplaceAllString(text, "$1")
	text = entityReplacer.Replace(text)
	text = htmlTag.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
