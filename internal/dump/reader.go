// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dump streams pages out of a MediaWiki XML export without
// holding more than one page in memory.
package dump

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

// redirectMarker prefixes the content of alias pages, which carry no
// quotes of their own.
const redirectMarker = "#REDIRECT"

// progressInterval is how many processed pages elapse between progress
// log lines.
const progressInterval = 100

// Reader produces one Page at a time from an XML dump stream. Tags are
// matched by local name, so namespace-prefixed exports parse the same as
// plain ones. The sequence is finite and non-restartable: once Next
// returns io.EOF it always will.
//
// Redirect pages, pages with namespaced titles (containing ":"), and
// pages with empty content are counted as processed but never returned.
type Reader struct {
	dec       *xml.Decoder
	log       zerolog.Logger
	pageLimit int
	processed int
	done      bool
}

// NewReader wraps the dump stream. pageLimit bounds how many pages are
// processed before the sequence ends; zero or negative means unbounded.
func NewReader(r io.Reader, pageLimit int, log zerolog.Logger) *Reader {
	return &Reader{
		dec:       xml.NewDecoder(r),
		log:       log,
		pageLimit: pageLimit,
	}
}

// Processed returns how many pages have been evaluated so far, whether
// or not they were returned.
func (r *Reader) Processed() int {
	return r.processed
}

// Next returns the next forwardable page. It returns io.EOF when the
// stream is exhausted, the page limit is reached, or the input turns out
// to be malformed; a structural error is logged once and then treated as
// end of sequence, so pages already returned stay valid.
func (r *Reader) Next() (types.Page, error) {
	if r.done {
		return types.Page{}, io.EOF
	}

	var (
		inPage  bool
		title   string
		content string
	)

	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err != io.EOF {
				r.log.Warn().Err(err).Int("pages", r.processed).
					Msg("malformed dump, stopping early")
			}
			r.done = true
			return types.Page{}, io.EOF
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "page":
				inPage = true
				title, content = "", ""
			case "title":
				if inPage {
					text, err := r.readText()
					if err != nil {
						return types.Page{}, io.EOF
					}
					title = text
				}
			case "text":
				if inPage {
					text, err := r.readText()
					if err != nil {
						return types.Page{}, io.EOF
					}
					content = text
				}
			}

		case xml.EndElement:
			if t.Name.Local != "page" || !inPage {
				continue
			}
			inPage = false
			r.processed++

			if r.pageLimit > 0 && r.processed >= r.pageLimit {
				r.done = true
			}
			if r.processed%progressInterval == 0 {
				r.log.Info().Int("pages", r.processed).Msg("processing dump")
			}

			if forwardable(title, content) {
				return types.Page{Title: title, Content: content}, nil
			}
			if r.done {
				return types.Page{}, io.EOF
			}
		}
	}
}

// readText consumes character data up to the matching end element. The
// accumulated string is the only state kept for the element; the decoder
// discards the tokens as they are read.
func (r *Reader) readText() (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := r.dec.Token()
		if err != nil {
			if err != io.EOF {
				r.log.Warn().Err(err).Int("pages", r.processed).
					Msg("malformed dump, stopping early")
			}
			r.done = true
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// forwardable reports whether a completed page should be handed to the
// extractor: it must have content, not be a redirect alias, and carry an
// unnamespaced title.
func forwardable(title, content string) bool {
	if content == "" || title == "" {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(content), redirectMarker) {
		return false
	}
	return !strings.Contains(title, ":")
}
