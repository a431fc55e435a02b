// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/amirshahdadian/wikiquote-voice-search/internal/wikitext"
	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

// dumpXML wraps pages in a minimal mediawiki envelope.
func dumpXML(pages ...string) string {
	return `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.11/">` +
		strings.Join(pages, "") + `</mediawiki>`
}

func pageXML(title, text string) string {
	return fmt.Sprintf(
		`<page><title>%s</title><ns>0</ns><revision><id>1</id><text>%s</text></revision></page>`,
		title, text)
}

func readAll(t *testing.T, r *Reader) []types.Page {
	t.Helper()
	var pages []types.Page
	for {
		page, err := r.Next()
		if err == io.EOF {
			return pages
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		pages = append(pages, page)
	}
}

func TestReaderForwardsPages(t *testing.T) {
	in := dumpXML(
		pageXML("Albert Einstein", "* Imagination is more important than knowledge"),
		pageXML("Mark Twain", "* The secret of getting ahead is getting started"),
	)

	r := NewReader(strings.NewReader(in), 0, zerolog.Nop())
	pages := readAll(t, r)

	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].Title != "Albert Einstein" {
		t.Errorf("Title = %q", pages[0].Title)
	}
	if !strings.Contains(pages[0].Content, "Imagination") {
		t.Errorf("Content = %q", pages[0].Content)
	}
	if r.Processed() != 2 {
		t.Errorf("Processed() = %d, want 2", r.Processed())
	}
}

func TestReaderNamespacePrefixedTags(t *testing.T) {
	in := `<mw:mediawiki xmlns:mw="http://www.mediawiki.org/xml/export-0.11/">` +
		`<mw:page><mw:title>Albert Einstein</mw:title><mw:revision>` +
		`<mw:text>* A sufficiently long quote for testing</mw:text>` +
		`</mw:revision></mw:page></mw:mediawiki>`

	r := NewReader(strings.NewReader(in), 0, zerolog.Nop())
	pages := readAll(t, r)

	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if pages[0].Title != "Albert Einstein" {
		t.Errorf("Title = %q", pages[0].Title)
	}
}

func TestReaderSkipsRedirects(t *testing.T) {
	in := dumpXML(
		pageXML("Alias Page", "#REDIRECT [[Real Page]]"),
		pageXML("Real Page", "* A sufficiently long quote for testing"),
	)

	r := NewReader(strings.NewReader(in), 0, zerolog.Nop())
	pages := readAll(t, r)

	if len(pages) != 1 || pages[0].Title != "Real Page" {
		t.Errorf("pages = %+v, want only Real Page", pages)
	}
	if r.Processed() != 2 {
		t.Errorf("Processed() = %d, want 2 (redirect still counted)", r.Processed())
	}
}

func TestReaderSkipsNamespacedTitles(t *testing.T) {
	in := dumpXML(
		pageXML("Talk:Foo", "* A perfectly valid quote line that is long enough"),
		pageXML("Foo", "* A perfectly valid quote line that is long enough"),
	)

	r := NewReader(strings.NewReader(in), 0, zerolog.Nop())
	pages := readAll(t, r)

	if len(pages) != 1 || pages[0].Title != "Foo" {
		t.Errorf("pages = %+v, want only Foo", pages)
	}
}

func TestReaderSkipsEmptyContent(t *testing.T) {
	in := dumpXML(
		pageXML("Empty Page", ""),
		pageXML("Full Page", "* A sufficiently long quote for testing"),
	)

	r := NewReader(strings.NewReader(in), 0, zerolog.Nop())
	pages := readAll(t, r)

	if len(pages) != 1 || pages[0].Title != "Full Page" {
		t.Errorf("pages = %+v, want only Full Page", pages)
	}
}

func TestReaderPageLimit(t *testing.T) {
	in := dumpXML(
		pageXML("Talk:Skipped", "* A quote on a namespaced page, long enough"),
		pageXML("Second", "* The second page quote, long enough to pass"),
		pageXML("Third", "* The third page quote, long enough to pass"),
	)

	r := NewReader(strings.NewReader(in), 2, zerolog.Nop())
	pages := readAll(t, r)

	// The discarded Talk page counts toward the limit, so only the
	// second page is ever forwarded.
	if len(pages) != 1 || pages[0].Title != "Second" {
		t.Errorf("pages = %+v, want only Second", pages)
	}
	if r.Processed() != 2 {
		t.Errorf("Processed() = %d, want exactly 2", r.Processed())
	}
}

func TestReaderMalformedInputEndsSequence(t *testing.T) {
	in := dumpXML(pageXML("Good Page", "* A sufficiently long quote for testing")) // valid...
	in = strings.TrimSuffix(in, "</mediawiki>") + "<page><title>Broken"           // ...then truncated

	r := NewReader(strings.NewReader(in), 0, zerolog.Nop())

	page, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error before malformed region: %v", err)
	}
	if page.Title != "Good Page" {
		t.Errorf("Title = %q", page.Title)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() after malformed input = %v, want io.EOF", err)
	}
	// The sequence stays terminated.
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() on done reader = %v, want io.EOF", err)
	}
}

func TestExtractAll(t *testing.T) {
	in := dumpXML(
		pageXML("Albert Einstein", "* Imagination is more important than knowledge\n** [[Albert Einstein]]"),
		pageXML("Talk:Foo", "* A perfectly valid quote line that is long enough"),
		pageXML("Mark Twain", "* The secret of getting ahead is getting started"),
	)

	ex := wikitext.NewExtractor(wikitext.DefaultPatterns())
	records, err := ExtractAll(context.Background(), strings.NewReader(in), ex, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("ExtractAll() error: %v", err)
	}

	want := []types.Record{
		{Quote: "Imagination is more important than knowledge", Author: "Albert Einstein", Source: "Albert Einstein"},
		{Quote: "The secret of getting ahead is getting started", Author: "Mark Twain", Source: "Mark Twain"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestExtractAllCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := dumpXML(pageXML("Foo", "* A sufficiently long quote for testing"))
	ex := wikitext.NewExtractor(wikitext.DefaultPatterns())

	if _, err := ExtractAll(ctx, strings.NewReader(in), ex, 0, zerolog.Nop()); err != context.Canceled {
		t.Errorf("ExtractAll() = %v, want context.Canceled", err)
	}
}
