// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikitext

import "regexp"

// Matcher is one ordered recognition rule: an anchored pattern and the
// index of the capture group holding the interesting text.
type Matcher struct {
	re    *regexp.Regexp
	group int
}

// Match tests the line against the rule and returns the captured text.
func (m Matcher) Match(line string) (string, bool) {
	sub := m.re.FindStringSubmatch(line)
	if sub == nil {
		return "", false
	}
	return sub[m.group], true
}

// PatternSet holds the ordered quote and author matchers. Both sequences
// are evaluated top to bottom and the first matching rule wins, so more
// specific markup forms must come before the forms they would otherwise
// be masked by. A PatternSet is immutable once constructed; build one
// with DefaultPatterns and pass it to the extractor.
type PatternSet struct {
	quotes  []Matcher
	authors []Matcher
}

// DefaultPatterns returns the standard Wikiquote rule set.
//
// Quote rules, most specific first: a quoted bullet, a bold bullet, an
// italic bullet, then the bare bullet that would mask all of them.
// Author rules follow the same ordering: the linked, tilde, and "Source:"
// sub-bullet forms come before the bare sub-bullet that subsumes them.
func DefaultPatterns() PatternSet {
	return PatternSet{
		quotes: []Matcher{
			{regexp.MustCompile(`^\*\s*["“”](.+?)["“”]`), 1},
			{regexp.MustCompile(`^\*\s*'''(.+?)'''`), 1},
			{regexp.MustCompile(`^\*\s*''(.+?)''`), 1},
			{regexp.MustCompile(`^\*\s*([^*].+)$`), 1},
		},
		authors: []Matcher{
			{regexp.MustCompile(`^\*\*\s*\[\[([^\]|]+)(?:\|[^\]]+)?\]\]`), 1},
			{regexp.MustCompile(`^\*\*\s*~\s*(.+)$`), 1},
			{regexp.MustCompile(`(?i)^\*\*\s*source:\s*(.+)$`), 1},
			{regexp.MustCompile(`^\*\*\s*(.+)$`), 1},
		},
	}
}

// MatchQuote returns the raw quote capture from the first quote rule that
// matches the line.
func (p PatternSet) MatchQuote(line string) (string, bool) {
	return matchFirst(p.quotes, line)
}

// MatchAuthor returns the raw author capture from the first author rule
// that matches the line.
func (p PatternSet) MatchAuthor(line string) (string, bool) {
	return matchFirst(p.authors, line)
}

func matchFirst(rules []Matcher, line string) (string, bool) {
	for _, m := range rules {
		if capture, ok := m.Match(line); ok {
			return capture, true
		}
	}
	return "", false
}
