package utils

import (
	"os"
	"strings"
)

func GetEnv(env string) string {
	switch env {
	case "USER_AGENT":
		userAgent, ok := os.LookupEnv("USER_AGENT")
		if !ok {
			userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/111.0.0.0 Safari/537.36"
		}
		return userAgent
	default:
		return os.Getenv(env)
	}
}

// GetFilters reads a comma-separated list of regex patterns from env.
// Empty segments are dropped.
func GetFilters(env string) []string {
	raw := os.Getenv(env)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var filters []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}
