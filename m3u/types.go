package m3u

// Status reports whether a stream's media reference is known reachable.
// A stream starts BAD unless its reference was statically classified as
// good (acestream URI or local file); the liveness prober may promote it
// to GOOD, never the other way.
type Status string

const (
	StatusGood Status = "GOOD"
	StatusBad  Status = "BAD"
)

type Tvg struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// StreamInfo is one parsed playlist entry. Unresolved fields hold "",
// never a nil; URL is always non-empty for emitted records.
type StreamInfo struct {
	Title    string   `json:"title"`
	Logo     string   `json:"logo"`
	URL      string   `json:"url"`
	Category string   `json:"category"`
	Tvg      Tvg      `json:"tvg"`
	Country  Country  `json:"country"`
	Language Language `json:"language"`
	Status   Status   `json:"status"`
}
