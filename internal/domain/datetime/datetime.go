// Package datetime parses and validates the date strings users type into commands and modals.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/sho0pi/naturaltime"
)

// DisplayLayout is how schedule times are shown to users.
const DisplayLayout = "2006-01-02 15:04"

var layouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
}

type Parser struct {
	loc     *time.Location
	natural *naturaltime.Parser
}

// NewParser returns a parser reading dates in loc. With natural set, expressions such as
// "tomorrow at 10am" are accepted when no fixed layout matches.
func NewParser(loc *time.Location, natural bool) (*Parser, error) {
	p := &Parser{loc: loc}
	if natural {
		np, err := naturaltime.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize natural date parser: %w", err)
		}
		p.natural = np
	}
	return p, nil
}

func (p *Parser) Location() *time.Location {
	return p.loc
}

// Parse reads a single date.
func (p *Parser) Parse(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", domain.ErrInvalidDateFormat)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, p.loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(p.loc), nil
	}

	if p.natural != nil {
		result, err := p.natural.ParseDate(value, now.In(p.loc))
		if err == nil && result != nil {
			return result.In(p.loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, value)
}

// ParseRange parses both ends and requires end to be strictly after start.
func (p *Parser) ParseRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	startAt, err := p.Parse(start, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endAt, err := p.Parse(end, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !endAt.After(startAt) {
		return time.Time{}, time.Time{}, domain.ErrEndBeforeStart
	}
	return startAt, endAt, nil
}

// ValidateFuture rejects a range with either end strictly before now.
func ValidateFuture(start, end, now time.Time) error {
	if start.Before(now) || end.Before(now) {
		return domain.ErrPastDate
	}
	return nil
}

// Format renders epoch seconds in loc.
func Format(epoch int64, loc *time.Location) string {
	return time.Unix(epoch, 0).In(loc).Format(DisplayLayout)
}

// TruncateHour returns the top of the hour containing t, in loc.
func TruncateHour(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
}
