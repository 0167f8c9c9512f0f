package config

import (
	"path/filepath"
	"runtime"
	"time"
)

// Config carries process-wide parser defaults. Individual Parser
// instances copy these values at construction time.
type Config struct {
	DataPath  string
	UserAgent string
	Timeout   time.Duration
	Workers   int
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/111.0.0.0 Safari/537.36"

var globalConfig = &Config{
	DataPath:  "/m3u-parser/data/",
	UserAgent: defaultUserAgent,
	Timeout:   5 * time.Second,
	Workers:   runtime.NumCPU() * 2,
}

func GetConfig() *Config {
	return globalConfig
}

func SetConfig(c *Config) {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU() * 2
	}
	globalConfig = c
}

func GetCachePath() string {
	return filepath.Join(globalConfig.DataPath, "streams.json.zst")
}
