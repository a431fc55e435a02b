package wikitext

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Imagination is more important than knowledge.", "Imagination is more important than knowledge."},
		{"bare link", "[[Albert Einstein]]", "Albert Einstein"},
		{"labeled link", "[[Albert Einstein|Einstein]]", "Einstein"},
		{"external link", "[https://example.org the source]", "https://example.org the source"},
		{"bold", "'''Stay hungry''', stay foolish", "Stay hungry, stay foolish"},
		{"italic", "''Cogito'' ergo sum", "Cogito ergo sum"},
		{"bold and italic mixed", "'''To be''' or ''not'' to be", "To be or not to be"},
		{"html entities", "War &amp; Peace is &quot;long&quot;", `War & Peace is "long"`},
		{"angle entities", "x &lt; y &gt; z", "x < y > z"},
		{"html tags stripped", "a <ref>citation</ref> b", "a citation b"},
		{"whitespace collapsed", "  too \t many \n spaces  ", "too many spaces"},
		{"link inside sentence", "As [[Mark Twain|Twain]] said, travel is fatal to prejudice", "As Twain said, travel is fatal to prejudice"},
		{"everything at once", "'''[[Oscar Wilde]]''' was &quot;witty&quot; <small>indeed</small>", `Oscar Wilde was "witty" indeed`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text with no markup",
		"[[a|b]] and [[c]] and [d]",
		"'''bold''' ''italic'' &quot;quoted&quot;",
		"mismatched '''bold without close",
		"mismatched [[link without close",
		"[[a|[nested]]]",
		"''''",
		"<tag>inner</tag> & &lt;escaped&gt;",
		"   spaced    out   ",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
