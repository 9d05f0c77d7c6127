package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayOffsets maps fixed relative-day phrases to an offset in days.
var dayOffsets = map[string]int{
	"today":     0,
	"tonight":   0,
	"tomorrow":  1,
	"yesterday": -1,
	"next week": 7,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDurationRe = regexp.MustCompile(`in (\d+) (days?|weeks?|months?)`)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves a relative date string against baseTime (usually
// time.Now()). Absolute YYYY-MM-DD dates pass through unchanged;
// unrecognized input falls back to the start of the base day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if offset, ok := dayOffsets[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", relative, p.location); err == nil {
		return t, nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return p.startOfDay(baseTime), nil
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default: // month
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday" through "next sunday". The
// result is always strictly in the future: "next wednesday" said on a
// Wednesday means a week out.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	target, ok := weekdays[strings.TrimPrefix(relative, "next ")]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", relative)
	}

	daysUntil := int(target-baseTime.Weekday()+7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day that starts at startOfDay,
// used to build all-day calendar event windows.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
