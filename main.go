package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"m3u-parser/config"
	"m3u-parser/logger"
	"m3u-parser/m3u"
	"m3u-parser/updater"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// manually set time zone
	if tz := os.Getenv("TZ"); tz != "" {
		var err error
		time.Local, err = time.LoadLocation(tz)
		if err != nil {
			logger.Default.Errorf("error loading location '%s': %v", tz, err)
		}
	}

	cfg := config.GetConfig()
	if dataPath := os.Getenv("DATA_PATH"); dataPath != "" {
		cfg.DataPath = dataPath
	}
	if userAgent := os.Getenv("USER_AGENT"); userAgent != "" {
		cfg.UserAgent = userAgent
	}
	if timeout, err := strconv.Atoi(os.Getenv("TIMEOUT")); err == nil && timeout > 0 {
		cfg.Timeout = time.Duration(timeout) * time.Second
	}
	if workers, err := strconv.Atoi(os.Getenv("PARSER_WORKERS")); err == nil && workers > 0 {
		cfg.Workers = workers
	}
	config.SetConfig(cfg)

	probesPerSecond, _ := strconv.Atoi(os.Getenv("PROBES_PER_SECOND"))
	parser := m3u.NewParser(&m3u.Options{
		ProbesPerSecond: probesPerSecond,
	})

	if _, err := updater.Initialize(ctx, parser); err != nil {
		logger.Default.Fatalf("Error initializing updater: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Default.Log("Shutting down.")
}
