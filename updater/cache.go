package updater

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"m3u-parser/config"
	"m3u-parser/m3u"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// SaveCache persists streams as zstd-compressed JSON under the config
// data path. The write goes through a temp file and a rename so readers
// never see a partial cache.
func SaveCache(streams []m3u.StreamInfo) error {
	if len(streams) == 0 {
		return nil
	}

	path := config.GetCachePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating cache directory: %w", err)
	}

	data, err := m3u.MarshalStreams(streams, false)
	if err != nil {
		return fmt.Errorf("error marshalling cache: %w", err)
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("error creating cache file: %w", err)
	}

	encoder, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("error creating zstd writer: %w", err)
	}

	if _, err := encoder.Write(data); err != nil {
		encoder.Close()
		file.Close()
		return fmt.Errorf("error writing cache: %w", err)
	}
	if err := encoder.Close(); err != nil {
		file.Close()
		return fmt.Errorf("error flushing cache: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing cache file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error moving cache file: %w", err)
	}
	return nil
}

// LoadCache restores the last persisted stream set.
func LoadCache() ([]m3u.StreamInfo, error) {
	file, err := os.Open(config.GetCachePath())
	if err != nil {
		return nil, fmt.Errorf("error opening cache file: %w", err)
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("error creating zstd reader: %w", err)
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("error reading cache: %w", err)
	}

	var streams []m3u.StreamInfo
	if err := json.Unmarshal(data, &streams); err != nil {
		return nil, fmt.Errorf("error unmarshalling cache: %w", err)
	}
	return streams, nil
}
