package granicus

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ClipMeta is metadata recovered from a clip's title and agenda text.
type ClipMeta struct {
	Date        string // ISO YYYY-MM-DD, empty when not found
	MeetingBody string
	Title       string
}

var (
	// "January 8 2026" or "January 8, 2026"
	namedDateRe = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+(\d{4})`)
	// "1/8/2026" or "01/08/2026"
	numericDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

	bodyRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(WQFB|CAC|LFUCG|Council|Commission|Board|Committee)\b`),
		regexp.MustCompile(`(?i)(Work Session|Regular Session|Special Session|Budget Hearing)`),
	}

	monthIndex = map[string]time.Month{
		"january": time.January, "february": time.February, "march": time.March,
		"april": time.April, "may": time.May, "june": time.June,
		"july": time.July, "august": time.August, "september": time.September,
		"october": time.October, "november": time.November, "december": time.December,
	}
)

// ExtractMeta pulls a meeting date and body from the clip title, falling back
// to the leading portion of the agenda text for the date.
func ExtractMeta(clipID int, title, agendaText string) ClipMeta {
	meta := ClipMeta{Title: title}
	if meta.Title == "" {
		meta.Title = fmt.Sprintf("Clip %d", clipID)
	}

	sources := []string{}
	if title != "" {
		sources = append(sources, title)
	}
	if agendaText != "" {
		head := agendaText
		if len(head) > 500 {
			head = head[:500]
		}
		sources = append(sources, head)
	}

	for _, text := range sources {
		if d := extractDate(text); d != "" {
			meta.Date = d
			break
		}
	}

	for _, re := range bodyRes {
		if m := re.FindStringSubmatch(title); m != nil {
			meta.MeetingBody = m[1]
			break
		}
	}

	return meta
}

func extractDate(text string) string {
	if m := namedDateRe.FindStringSubmatch(text); m != nil {
		month := monthIndex[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return validDate(year, int(month), day)
	}
	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return validDate(year, month, day)
	}
	return ""
}

func validDate(year, month, day int) string {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month {
		return ""
	}
	return d.Format("2006-01-02")
}

var (
	duplicateSuffixRe = regexp.MustCompile(`\s*\(\s*\d+\s*\)\s*$`)
	separatorRe       = regexp.MustCompile(`[\s\-]+`)
	unsafeRe          = regexp.MustCompile(`[^\w.]`)
)

// SanitizeTitle turns a clip title into a safe filename fragment. Trailing
// "(1)"-style counters are Granicus duplicate markers and are stripped.
func SanitizeTitle(title string) string {
	s := duplicateSuffixRe.ReplaceAllString(title, "")
	s = separatorRe.ReplaceAllString(s, "_")
	s = unsafeRe.ReplaceAllString(s, "")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		return "clip"
	}
	return s
}
