package utils

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s is a syntactically valid absolute URL.
// Single-letter schemes are rejected so Windows drive paths like
// `C:\media\file.mp4` fall through to the file-path classifier.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if len(u.Scheme) < 2 {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

func IsPlaylistFile(path string) bool {
	p := strings.TrimSpace(strings.ToLower(path))
	return strings.HasSuffix(p, ".m3u") || strings.HasSuffix(p, ".m3u8")
}
