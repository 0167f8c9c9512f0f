package m3u

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"m3u-parser/logger"
)

// SaveToFile writes streams to filename. The format is taken from the
// filename's extension when it has one, otherwise from the format
// argument, which is then appended as the extension. An existing file is
// overwritten. An empty stream set is a logged no-op.
func SaveToFile(streams []StreamInfo, filename, format string) error {
	if ext := filepath.Ext(filename); ext != "" {
		format = ext[1:]
	}
	format = strings.ToLower(format)

	if !strings.HasSuffix(strings.ToLower(filename), "."+format) {
		filename = filename + "." + format
	}

	if len(streams) == 0 {
		logger.Default.Warn("Either parsing is not done or no stream info was found after parsing")
		return nil
	}

	var data []byte
	switch format {
	case "json":
		content, err := MarshalStreams(streams, true)
		if err != nil {
			return fmt.Errorf("error marshalling to JSON: %w", err)
		}
		data = content
	case "m3u", "m3u8":
		data = []byte(RenderM3U(streams))
	default:
		return fmt.Errorf("unrecognized format: %s", format)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	logger.Default.Logf("Saved to file: %s", filename)
	return nil
}

func (p *Parser) ToFile(filename, format string) error {
	return SaveToFile(p.streams, filename, format)
}
