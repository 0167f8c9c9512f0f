package m3u

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStreams() []StreamInfo {
	return []StreamInfo{
		{
			Title:    "BBC News",
			Category: "News",
			URL:      "https://example.com/bbc.m3u8",
			Tvg:      Tvg{ID: "bbc.uk"},
			Country:  Country{Code: "GB", Name: "United Kingdom"},
			Language: Language{Code: "EN", Name: "English"},
			Status:   StatusBad,
		},
		{
			Title:    "ESPN",
			Category: "Sports",
			URL:      "https://example.com/espn.mp4",
			Tvg:      Tvg{ID: "espn.us"},
			Country:  Country{Code: "US", Name: "United States"},
			Language: Language{Code: "EN", Name: "English"},
			Status:   StatusGood,
		},
		{
			Title:    "TF1",
			Category: "News",
			URL:      "https://example.com/tf1.m3u8",
			Tvg:      Tvg{ID: "tf1.fr"},
			Country:  Country{Code: "FR", Name: "France"},
			Language: Language{Code: "FR", Name: "French"},
			Status:   StatusBad,
		},
	}
}

func queryParser() *Parser {
	parser := NewParser(nil)
	parser.RestoreStreams(testStreams())
	return parser
}

func TestFilterByRetain(t *testing.T) {
	parser := queryParser()
	require.NoError(t, parser.FilterBy("title", []string{"News"}, true))

	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, "BBC News", streams[0].Title)
}

func TestFilterByExcludeIsSticky(t *testing.T) {
	parser := queryParser()
	require.NoError(t, parser.FilterBy("title", []string{"News"}, false))
	assert.Equal(t, 2, parser.StreamCount())

	// A second, unrelated filter never resurrects the removed record.
	require.NoError(t, parser.FilterBy("category", []string{"News|Sports"}, true))
	for _, s := range parser.GetStreams() {
		assert.NotEqual(t, "BBC News", s.Title)
	}

	parser.Reset()
	streams := parser.GetStreams()
	require.Len(t, streams, 3)
	assert.Equal(t, testStreams(), streams)
}

func TestFilterByMultiplePatterns(t *testing.T) {
	parser := queryParser()
	require.NoError(t, parser.FilterBy("title", []string{"BBC", "ESPN"}, true))
	assert.Equal(t, 2, parser.StreamCount())

	parser.Reset()
	require.NoError(t, parser.FilterBy("title", []string{"BBC", "ESPN"}, false))
	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, "TF1", streams[0].Title)
}

func TestFilterByNestedKeys(t *testing.T) {
	parser := queryParser()
	require.NoError(t, parser.FilterBy("tvg.id", []string{`\.us$`}, true))
	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, "ESPN", streams[0].Title)

	parser.Reset()
	require.NoError(t, parser.FilterBy("country.name", []string{"United"}, true))
	assert.Equal(t, 2, parser.StreamCount())
}

func TestLanguageKeysReadLanguageFields(t *testing.T) {
	// language.code must resolve against the language fields, not the
	// country ones: FR the country code belongs to a record whose
	// language code is also FR, but GB's language code is EN.
	parser := queryParser()
	require.NoError(t, parser.FilterBy("language.code", []string{"^EN$"}, true))
	assert.Equal(t, 2, parser.StreamCount())

	parser.Reset()
	require.NoError(t, parser.FilterBy("language.name", []string{"French"}, true))
	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, "TF1", streams[0].Title)
}

func TestFilterByUsageErrors(t *testing.T) {
	parser := queryParser()
	before := parser.GetStreams()

	assert.Error(t, parser.FilterBy("bogus", []string{"x"}, true))
	assert.Error(t, parser.FilterBy("tvg", []string{"x"}, true))
	assert.Error(t, parser.FilterBy("tvg.bogus", []string{"x"}, true))
	assert.Error(t, parser.FilterBy("tvg.id.extra", []string{"x"}, true))
	assert.ErrorIs(t, parser.FilterBy("title", nil, true), ErrNoFilters)
	assert.Error(t, parser.FilterBy("title", []string{"("}, true))

	assert.Equal(t, before, parser.GetStreams())
}

func TestSortByAscendingThenDescending(t *testing.T) {
	parser := queryParser()

	require.NoError(t, parser.SortBy("title", true))
	ascending := parser.GetStreams()
	assert.Equal(t, "BBC News", ascending[0].Title)
	assert.Equal(t, "ESPN", ascending[1].Title)
	assert.Equal(t, "TF1", ascending[2].Title)

	require.NoError(t, parser.SortBy("title", false))
	descending := parser.GetStreams()
	for i := range ascending {
		assert.Equal(t, ascending[len(ascending)-1-i].Title, descending[i].Title)
	}
}

func TestSortByIsStable(t *testing.T) {
	parser := queryParser()
	require.NoError(t, parser.SortBy("category", true))

	streams := parser.GetStreams()
	require.Len(t, streams, 3)
	// Both News records keep their original relative order.
	assert.Equal(t, "BBC News", streams[0].Title)
	assert.Equal(t, "TF1", streams[1].Title)
	assert.Equal(t, "ESPN", streams[2].Title)
}

func TestSortByInvalidKey(t *testing.T) {
	parser := queryParser()
	before := parser.GetStreams()
	assert.Error(t, parser.SortBy("country.bogus", true))
	assert.Equal(t, before, parser.GetStreams())
}

func TestQueriesOnEmptySequence(t *testing.T) {
	parser := NewParser(nil)
	assert.NoError(t, parser.FilterBy("title", []string{"x"}, true))
	assert.NoError(t, parser.SortBy("title", true))
	assert.Equal(t, 0, parser.StreamCount())
}

func TestExtensionAndCategoryHelpers(t *testing.T) {
	parser := queryParser()
	require.NoError(t, parser.RetrieveByExtension([]string{`\.m3u8$`}))
	assert.Equal(t, 2, parser.StreamCount())

	parser.Reset()
	require.NoError(t, parser.RemoveByExtension([]string{`\.mp4$`}))
	assert.Equal(t, 2, parser.StreamCount())

	parser.Reset()
	require.NoError(t, parser.RemoveByCategory([]string{"Sports"}))
	assert.Equal(t, 2, parser.StreamCount())

	parser.Reset()
	require.NoError(t, parser.RetrieveByCategory([]string{"Sports"}))
	require.Equal(t, 1, parser.StreamCount())
	assert.Equal(t, "ESPN", parser.GetStreams()[0].Title)
}
