package m3u

import (
	"context"
	"regexp"
	"strings"

	"m3u-parser/codes"
	"m3u-parser/utils"
)

var (
	fileRegex      = regexp.MustCompile(`^[a-zA-Z]:\\((?:.*?\\)*).*\.[\d\w]{3,5}$|^(/[^/]*)+/?.[\d\w]{3,5}$`)
	acestreamRegex = regexp.MustCompile(`acestream://[a-zA-Z0-9]+`)

	tvgIDRegex    = regexp.MustCompile(`tvg-id="(.*?)"`)
	tvgNameRegex  = regexp.MustCompile(`tvg-name="(.*?)"`)
	tvgURLRegex   = regexp.MustCompile(`tvg-url="(.*?)"`)
	logoRegex     = regexp.MustCompile(`tvg-logo="(.*?)"`)
	categoryRegex = regexp.MustCompile(`group-title="(.*?)"`)
	countryRegex  = regexp.MustCompile(`tvg-country="(.*?)"`)
	languageRegex = regexp.MustCompile(`tvg-language="(.*?)"`)

	// titleRegex captures the trailing ,title while skipping commas that
	// sit inside quoted attribute values.
	titleRegex = regexp.MustCompile(`,([^",]+)$`)
)

func getByRegex(re *regexp.Regexp, content string) string {
	if m := re.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// parseStreamInfo builds one StreamInfo from the metadata line at lineNum
// and its following reference line. A nil return means the entry yielded
// nothing, which is a normal outcome, not an error.
func (p *Parser) parseStreamInfo(ctx context.Context, lineNum int) *StreamInfo {
	lineInfo := p.lines[lineNum]
	if lineInfo == "" {
		return nil
	}

	streamLink, status := p.classifyReference(lineNum)
	if streamLink == "" {
		return nil
	}

	info := &StreamInfo{
		URL:    streamLink,
		Status: status,
	}

	info.Title = getByRegex(titleRegex, lineInfo)
	info.Logo = getByRegex(logoRegex, lineInfo)
	info.Category = getByRegex(categoryRegex, lineInfo)
	info.Tvg = Tvg{
		ID:   getByRegex(tvgIDRegex, lineInfo),
		Name: getByRegex(tvgNameRegex, lineInfo),
		URL:  getByRegex(tvgURLRegex, lineInfo),
	}

	if country := getByRegex(countryRegex, lineInfo); country != "" {
		info.Country = Country{
			Code: country,
			Name: codes.CountryName(country),
		}
	}

	if language := getByRegex(languageRegex, lineInfo); language != "" {
		info.Language = Language{
			Code: codes.LanguageCode(strings.ToLower(language)),
			Name: language,
		}
	}

	if p.checkLive && info.Status == StatusBad {
		info.Status = p.prober.Check(ctx, info.URL)
	}

	return info
}

// classifyReference picks the media reference from the one or two lines
// after the metadata line. Precedence per candidate line: acestream URI
// (GOOD), then generic absolute URL (BAD pending probe), then local file
// path (GOOD). The first line satisfying any rule wins.
func (p *Parser) classifyReference(lineNum int) (string, Status) {
	for _, offset := range []int{1, 2} {
		idx := lineNum + offset
		if idx >= len(p.lines) {
			break
		}
		line := p.lines[idx]

		isAcestream := acestreamRegex.MatchString(line)
		if isAcestream || utils.IsValidURL(line) {
			if isAcestream {
				return line, StatusGood
			}
			return line, StatusBad
		}
		if fileRegex.MatchString(line) {
			return line, StatusGood
		}
	}
	return "", StatusBad
}
