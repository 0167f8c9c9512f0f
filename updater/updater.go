package updater

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"m3u-parser/logger"
	"m3u-parser/m3u"
	"m3u-parser/utils"

	"github.com/robfig/cron/v3"
)

// Updater keeps an exported playlist in sync with its source on a cron
// schedule. Only one sync runs at a time.
type Updater struct {
	sync.Mutex
	ctx    context.Context
	Cron   *cron.Cron
	Parser *m3u.Parser

	source       string
	outputPath   string
	outputFormat string
	checkLive    bool
	lastChecksum string
}

func Initialize(ctx context.Context, parser *m3u.Parser) (*Updater, error) {
	source := os.Getenv("M3U_URL")

	outputPath := os.Getenv("OUTPUT_PATH")
	if strings.TrimSpace(outputPath) == "" {
		outputPath = "playlist.m3u"
	}

	outputFormat := os.Getenv("OUTPUT_FORMAT")
	if strings.TrimSpace(outputFormat) == "" {
		outputFormat = "m3u"
	}

	instance := &Updater{
		ctx:          ctx,
		Parser:       parser,
		source:       source,
		outputPath:   outputPath,
		outputFormat: outputFormat,
		checkLive:    os.Getenv("CHECK_LIVE") == "true",
	}

	cronSched := os.Getenv("SYNC_CRON")
	if strings.TrimSpace(cronSched) == "" {
		logger.Default.Log("SYNC_CRON not initialized. Defaulting to 0 0 * * * (12am every day).")
		cronSched = "0 0 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(cronSched, func() {
		go instance.UpdateSource(ctx)
	}); err != nil {
		logger.Default.Errorf("Error initializing background processes: %v", err)
		return nil, err
	}
	c.Start()
	instance.Cron = c

	syncOnBoot := os.Getenv("SYNC_ON_BOOT")
	if strings.TrimSpace(syncOnBoot) == "" {
		syncOnBoot = "true"
	}
	if syncOnBoot == "true" {
		logger.Default.Log("SYNC_ON_BOOT enabled. Starting initial M3U update.")
		go instance.UpdateSource(ctx)
	}

	return instance, nil
}

// UpdateSource re-parses the configured source, applies env filters and
// refreshes the export plus the snapshot cache. On a failed fetch the
// previous snapshot cache is restored so the session keeps serving data.
func (u *Updater) UpdateSource(ctx context.Context) {
	u.Lock()
	defer u.Unlock()

	select {
	case <-ctx.Done():
		return
	default:
	}

	if u.source == "" {
		logger.Default.Error("Background process: M3U_URL is not set.")
		return
	}

	logger.Default.Logf("Background process: Updating M3U from %s", u.source)
	if err := u.Parser.ParseM3U(ctx, u.source, u.checkLive); err != nil {
		logger.Default.Errorf("Background process: Error updating M3U: %v", err)
		if cached, cerr := LoadCache(); cerr == nil {
			logger.Default.Logf("Background process: Restored %d streams from snapshot cache", len(cached))
			u.Parser.RestoreStreams(cached)
		}
		return
	}

	u.applyFilters()
	u.export()

	if err := SaveCache(u.Parser.GetStreams()); err != nil {
		logger.Default.Errorf("Background process: Error writing snapshot cache: %v", err)
	}
	logger.Default.Logf("Background process: Updated M3U from %s", u.source)
}

func (u *Updater) applyFilters() {
	apply := func(key, env string, retrieve bool) {
		filters := utils.GetFilters(env)
		if len(filters) == 0 {
			return
		}
		if err := u.Parser.FilterBy(key, filters, retrieve); err != nil {
			logger.Default.Errorf("Background process: %s filter error: %v", env, err)
		}
	}

	apply("category", "INCLUDE_GROUPS", true)
	apply("category", "EXCLUDE_GROUPS", false)
	apply("title", "INCLUDE_TITLE", true)
	apply("title", "EXCLUDE_TITLE", false)
}

func (u *Updater) export() {
	streams := u.Parser.GetStreams()
	if len(streams) == 0 {
		logger.Default.Warn("Background process: no streams to export.")
		return
	}

	var data []byte
	var err error
	switch effectiveFormat(u.outputPath, u.outputFormat) {
	case "json":
		data, err = m3u.MarshalStreams(streams, true)
		if err != nil {
			logger.Default.Errorf("Background process: export error: %v", err)
			return
		}
	default:
		data = []byte(m3u.RenderM3U(streams))
	}

	sum := utils.CalculateChecksum(data)
	if sum == u.lastChecksum {
		logger.Default.Debug("Background process: export unchanged, skipping write.")
		return
	}

	if err := m3u.SaveToFile(streams, u.outputPath, u.outputFormat); err != nil {
		logger.Default.Errorf("Background process: export error: %v", err)
		return
	}
	u.lastChecksum = sum
}

func effectiveFormat(path, format string) string {
	if ext := filepath.Ext(path); ext != "" {
		format = ext[1:]
	}
	return strings.ToLower(format)
}
