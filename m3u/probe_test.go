package m3u

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func livePlaylist(url string) string {
	return fmt.Sprintf("#EXTM3U\n#EXTINF:-1 tvg-id=\"live\" group-title=\"News\",Live Channel\n%s\n", url)
}

func parseLive(t *testing.T, parser *Parser, content string) {
	t.Helper()
	require.NoError(t, parser.ParseM3U(context.Background(), writePlaylist(t, content), true))
}

func TestProbePromotesGood(t *testing.T) {
	var gotAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent.Store(r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parser := NewParser(&Options{UserAgent: "probe-agent/1.0"})
	parseLive(t, parser, livePlaylist(server.URL+"/good"))

	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, StatusGood, streams[0].Status)
	assert.Equal(t, "probe-agent/1.0", gotAgent.Load())
}

func TestProbeNonSuccessStaysBad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	parser := NewParser(nil)
	parseLive(t, parser, livePlaylist(server.URL+"/down"))

	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, StatusBad, streams[0].Status)
}

func TestProbeDisabledIssuesNoRequests(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	parser := NewParser(nil)
	require.NoError(t, parser.ParseM3U(context.Background(), writePlaylist(t, livePlaylist(server.URL+"/untouched")), false))

	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, StatusBad, streams[0].Status)
	assert.Equal(t, int64(0), hits.Load())
}

func TestProbeTimeoutMarksBad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	parser := NewParser(&Options{Timeout: 100 * time.Millisecond})
	parseLive(t, parser, livePlaylist(server.URL+"/slow"))

	streams := parser.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, StatusBad, streams[0].Status)
}

func TestDuplicateURLsProbedOnce(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	url := server.URL + "/shared"
	content := "#EXTM3U\n"
	for i := 0; i < 3; i++ {
		content += fmt.Sprintf("#EXTINF:-1 group-title=\"News\",Channel %d\n%s\n", i+1, url)
	}

	parser := NewParser(nil)
	parseLive(t, parser, content)

	streams := parser.GetStreams()
	require.Len(t, streams, 3)
	for _, stream := range streams {
		assert.Equal(t, StatusGood, stream.Status)
	}
	assert.Equal(t, int64(1), hits.Load())
}

func TestGoodResultsReusedAcrossSessions(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	content := livePlaylist(server.URL + "/cached")

	first := NewParser(nil)
	parseLive(t, first, content)
	require.Equal(t, int64(1), hits.Load())

	second := NewParser(nil)
	parseLive(t, second, content)

	streams := second.GetStreams()
	require.Len(t, streams, 1)
	assert.Equal(t, StatusGood, streams[0].Status)
	assert.Equal(t, int64(1), hits.Load())
}
