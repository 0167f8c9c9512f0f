package m3u

import (
	"github.com/goccy/go-json"
	"github.com/valyala/bytebufferpool"
)

// RenderM3U renders streams back to extended M3U text. An empty set
// renders to "" with no header; callers check emptiness before writing.
func RenderM3U(streams []StreamInfo) string {
	if len(streams) == 0 {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("#EXTM3U")
	for i := range streams {
		s := &streams[i]

		buf.WriteString("\n#EXTINF:-1")
		writeAttribute(buf, "tvg-id", s.Tvg.ID)
		writeAttribute(buf, "tvg-name", s.Tvg.Name)
		writeAttribute(buf, "tvg-url", s.Tvg.URL)
		writeAttribute(buf, "tvg-logo", s.Logo)
		writeAttribute(buf, "tvg-country", s.Country.Code)
		writeAttribute(buf, "tvg-language", s.Language.Name)
		writeAttribute(buf, "group-title", s.Category)
		if s.Title != "" {
			buf.WriteString(",")
			buf.WriteString(s.Title)
		}
		buf.WriteString("\n")
		buf.WriteString(s.URL)
	}
	return buf.String()
}

func writeAttribute(buf *bytebufferpool.ByteBuffer, name, value string) {
	if value == "" {
		return
	}
	buf.WriteString(" ")
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(value)
	buf.WriteString(`"`)
}

// MarshalStreams dumps streams to JSON, optionally human-indented.
func MarshalStreams(streams []StreamInfo, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(streams, "", "    ")
	}
	return json.Marshal(streams)
}

func (p *Parser) GetM3UContent() string {
	return RenderM3U(p.streams)
}

func (p *Parser) GetJSON(pretty bool) (string, error) {
	data, err := MarshalStreams(p.streams, pretty)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
