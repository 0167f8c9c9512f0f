package m3u

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// KeySplitter separates the field and subfield of a compound query key,
// e.g. "tvg.id" or "country.name".
const KeySplitter = "."

var ErrNoFilters = errors.New("filter words missing")

// keyAccessors enumerates every valid (field, subfield) pair and maps it
// to a string view of that field. Dispatch is a table lookup, not
// reflection; a key absent here is a usage error.
var keyAccessors = map[string]func(*StreamInfo) string{
	"title":         func(s *StreamInfo) string { return s.Title },
	"logo":          func(s *StreamInfo) string { return s.Logo },
	"url":           func(s *StreamInfo) string { return s.URL },
	"category":      func(s *StreamInfo) string { return s.Category },
	"status":        func(s *StreamInfo) string { return string(s.Status) },
	"tvg.id":        func(s *StreamInfo) string { return s.Tvg.ID },
	"tvg.name":      func(s *StreamInfo) string { return s.Tvg.Name },
	"tvg.url":       func(s *StreamInfo) string { return s.Tvg.URL },
	"country.code":  func(s *StreamInfo) string { return s.Country.Code },
	"country.name":  func(s *StreamInfo) string { return s.Country.Name },
	"language.code": func(s *StreamInfo) string { return s.Language.Code },
	"language.name": func(s *StreamInfo) string { return s.Language.Name },
}

func accessorFor(key string) (func(*StreamInfo) string, error) {
	if parts := strings.Split(key, KeySplitter); len(parts) > 2 {
		return nil, fmt.Errorf("nested key must be in the format <key>%s<nested_key>", KeySplitter)
	}
	accessor, ok := keyAccessors[key]
	if !ok {
		return nil, fmt.Errorf("%s key is not present", key)
	}
	return accessor, nil
}

// FilterBy keeps, when retrieve is true, the streams whose key value
// matches any of the filters, or, when retrieve is false, the streams
// matching none of them. Filters are compiled fresh on every call. Usage
// errors leave the sequence untouched.
func (p *Parser) FilterBy(key string, filters []string, retrieve bool) error {
	accessor, err := accessorFor(key)
	if err != nil {
		return err
	}
	if len(filters) == 0 {
		return ErrNoFilters
	}

	compiled := make([]*regexp.Regexp, 0, len(filters))
	for _, filter := range filters {
		re, err := regexp.Compile(filter)
		if err != nil {
			return fmt.Errorf("invalid filter %q: %w", filter, err)
		}
		compiled = append(compiled, re)
	}

	kept := make([]StreamInfo, 0, len(p.streams))
	for i := range p.streams {
		value := accessor(&p.streams[i])
		if matchesAny(compiled, value) == retrieve {
			kept = append(kept, p.streams[i])
		}
	}
	p.streams = kept
	return nil
}

func matchesAny(filters []*regexp.Regexp, value string) bool {
	for _, re := range filters {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// SortBy stably sorts the live sequence by the key's string value. Equal
// keys keep their prior relative order.
func (p *Parser) SortBy(key string, asc bool) error {
	accessor, err := accessorFor(key)
	if err != nil {
		return err
	}

	sort.SliceStable(p.streams, func(i, j int) bool {
		a := accessor(&p.streams[i])
		b := accessor(&p.streams[j])
		if asc {
			return a < b
		}
		return a > b
	})
	return nil
}

func (p *Parser) RemoveByExtension(extensions []string) error {
	return p.FilterBy("url", extensions, false)
}

func (p *Parser) RetrieveByExtension(extensions []string) error {
	return p.FilterBy("url", extensions, true)
}

func (p *Parser) RemoveByCategory(categories []string) error {
	return p.FilterBy("category", categories, false)
}

func (p *Parser) RetrieveByCategory(categories []string) error {
	return p.FilterBy("category", categories, true)
}
