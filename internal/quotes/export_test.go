package quotes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

func sampleRecords() []types.Record {
	return []types.Record{
		{Quote: "Imagination is more important than knowledge", Author: "Albert Einstein", Source: "Albert Einstein"},
		{Quote: "The secret of getting ahead is getting started", Author: "Mark Twain", Source: "Mark Twain"},
		{Quote: "The secret of getting ahead is getting started", Author: "Anonymous", Source: "Motivation"},
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	records := sampleRecords()

	require.NoError(t, SaveJSON(path, records))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSaveJSONFieldOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, SaveJSON(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	q := strings.Index(text, `"quote"`)
	a := strings.Index(text, `"author"`)
	s := strings.Index(text, `"source"`)
	require.True(t, q >= 0 && a >= 0 && s >= 0, "all three fields present")
	assert.True(t, q < a && a < s, "fields serialized in quote, author, source order")
}

func TestSaveJSONDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	require.NoError(t, SaveJSON(first, sampleRecords()))
	require.NoError(t, SaveJSON(second, sampleRecords()))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSaveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	require.NoError(t, SaveYAML(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "author: Albert Einstein")
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "quotes.json")
	require.NoError(t, SaveJSON(path, sampleRecords()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleRecords())
	assert.Equal(t, Summary{Quotes: 3, Authors: 3, Sources: 3}, got)

	assert.Equal(t, Summary{}, Summarize(nil))
}
