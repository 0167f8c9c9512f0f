package m3u

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"m3u-parser/config"
	"m3u-parser/logger"
	"m3u-parser/utils"

	"github.com/panjf2000/ants/v2"
)

// Parser owns one playlist session: the live stream sequence, the
// immutable post-parse snapshot, and the shared HTTP client used for the
// bulk fetch and the liveness probes. Filter, sort and reset are
// synchronous and expected to run after ParseM3U has returned.
type Parser struct {
	streams []StreamInfo
	backup  []StreamInfo
	lines   []string

	timeout   time.Duration
	userAgent string
	workers   int
	checkLive bool

	client *http.Client
	prober *prober
}

// Options overrides the process-wide defaults from the config package.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Workers bounds the per-entry worker pool. Zero selects a
	// CPU-based default.
	Workers int
	// ProbesPerSecond paces liveness probes. Zero means unlimited.
	ProbesPerSecond int
}

func NewParser(opts *Options) *Parser {
	cfg := config.GetConfig()

	timeout := cfg.Timeout
	userAgent := cfg.UserAgent
	workers := cfg.Workers
	probesPerSecond := 0

	if opts != nil {
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		if opts.UserAgent != "" {
			userAgent = opts.UserAgent
		}
		if opts.Workers > 0 {
			workers = opts.Workers
		}
		if opts.ProbesPerSecond > 0 {
			probesPerSecond = opts.ProbesPerSecond
		}
	}

	client := utils.NewHTTPClient(timeout)

	return &Parser{
		timeout:   timeout,
		userAgent: userAgent,
		workers:   workers,
		checkLive: false,
		client:    client,
		prober:    newProber(client, userAgent, probesPerSecond),
	}
}

// ParseM3U reads the playlist at path (a URL, a file:// URL or a plain
// filesystem path), extracts one StreamInfo per valid entry and replaces
// the session's stream sequence plus its snapshot. When checkLive is set,
// entries that could not be statically classified as good are probed over
// the network. Input errors abort the run without touching prior state.
func (p *Parser) ParseM3U(ctx context.Context, path string, checkLive bool) error {
	p.checkLive = checkLive

	var content string
	var err error

	switch {
	case strings.HasPrefix(path, "file://"):
		content, err = p.readFile(strings.TrimPrefix(path, "file://"))
	case utils.IsValidURL(path):
		content, err = p.readURL(ctx, path)
	default:
		content, err = p.readFile(path)
	}
	if err != nil {
		return err
	}

	lines := normalizeLines(content)
	if len(lines) == 0 {
		return errors.New("no content to parse")
	}
	p.lines = lines

	return p.parseLines(ctx)
}

func (p *Parser) readURL(ctx context.Context, m3uURL string) (string, error) {
	resp, err := utils.CustomHttpRequest(ctx, p.client, http.MethodGet, m3uURL, "")
	if err != nil {
		return "", fmt.Errorf("HTTP GET error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("download error: %w", err)
	}
	return string(data), nil
}

func (p *Parser) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	return string(data), nil
}

// normalizeLines trims every line and drops blank ones.
func normalizeLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseLines fans out one task per metadata line. Results land in a
// pre-sized slice indexed by submission order, so the joined sequence
// follows document order no matter when individual probes finish.
func (p *Parser) parseLines(ctx context.Context) error {
	var metaLines []int
	for i, line := range p.lines {
		if strings.Contains(line, "#EXTINF") {
			metaLines = append(metaLines, i)
		}
	}

	results := make([]*StreamInfo, len(metaLines))

	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return fmt.Errorf("error creating worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for slot, lineNum := range metaLines {
		slot, lineNum := slot, lineNum
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[slot] = p.parseStreamInfo(ctx, lineNum)
		}); err != nil {
			wg.Done()
			logger.Default.Errorf("Error submitting entry at line %d: %v", lineNum, err)
		}
	}
	wg.Wait()

	streams := make([]StreamInfo, 0, len(results))
	for _, info := range results {
		if info != nil {
			streams = append(streams, *info)
		}
	}

	p.streams = streams
	p.backup = append([]StreamInfo(nil), streams...)

	logger.Default.Logf("Parsing completed: %d streams from %d entries", len(p.streams), len(metaLines))
	return nil
}

// GetStreams returns a copy of the live stream sequence.
func (p *Parser) GetStreams() []StreamInfo {
	return append([]StreamInfo(nil), p.streams...)
}

func (p *Parser) StreamCount() int {
	return len(p.streams)
}

// RestoreStreams replaces the session's sequence and snapshot with
// previously exported records, e.g. ones loaded from the snapshot cache.
func (p *Parser) RestoreStreams(streams []StreamInfo) {
	p.streams = append([]StreamInfo(nil), streams...)
	p.backup = append([]StreamInfo(nil), streams...)
}

// Reset discards all filter and sort operations, restoring the sequence
// captured right after extraction.
func (p *Parser) Reset() {
	p.streams = append([]StreamInfo(nil), p.backup...)
}
