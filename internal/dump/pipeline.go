// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dump

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/amirshahdadian/wikiquote-voice-search/internal/wikitext"
	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

// ExtractAll drives the reader over the dump and runs the extractor on
// each forwarded page, returning every record in dump order. pageLimit
// bounds the pages processed (zero means all). Cancellation is
// cooperative: the context is checked between pages, never mid-page.
//
// A malformed dump ends the run early with the records extracted so far;
// only context cancellation is reported as an error.
func ExtractAll(ctx context.Context, in io.Reader, ex *wikitext.Extractor, pageLimit int, log zerolog.Logger) ([]types.Record, error) {
	reader := NewReader(in, pageLimit, log)

	var records []types.Record
	for {
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		default:
		}

		page, err := reader.Next()
		if err == io.EOF {
			break
		}

		found := ex.Extract(page.Content, page.Title)
		if len(found) > 0 {
			log.Debug().Str("title", page.Title).Int("quotes", len(found)).
				Msg("extracted quotes from page")
			records = append(records, found...)
		}
	}

	log.Info().Int("pages", reader.Processed()).Int("quotes", len(records)).
		Msg("finished parsing dump")
	return records, nil
}
