// Package displaytime converts backend timestamps into the dashboard's display timezone.
//
// Conversion never fails: an unparseable value renders as the current time in
// the display zone, so a bad field never breaks the surrounding response.
package displaytime

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the ISO-8601 form sent to the browser.
const Layout = "2006-01-02T15:04:05.999999Z07:00"

// istOffset is used when the zone database has no entry for Asia/Kolkata.
const istOffset = 5*60*60 + 30*60

// naiveLayouts carry no zone and are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var awareLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
}

// Converter renders timestamps in a fixed location.
type Converter struct {
	loc *time.Location
	now func() time.Time
}

// NewConverter returns a converter for the named zone.
// The IST fixed offset is used when name is empty or Asia/Kolkata cannot be loaded.
func NewConverter(name string) (*Converter, error) {
	if name == "" {
		return &Converter{loc: IST(), now: time.Now}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == "Asia/Kolkata" {
			return &Converter{loc: IST(), now: time.Now}, nil
		}
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return &Converter{loc: loc, now: time.Now}, nil
}

// NewConverterWithClock is NewConverter with an injectable clock.
func NewConverterWithClock(loc *time.Location, now func() time.Time) *Converter {
	return &Converter{loc: loc, now: now}
}

// IST is UTC+05:30.
func IST() *time.Location {
	return time.FixedZone("IST", istOffset)
}

// Location returns the display location.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Now returns the current time in the display location.
func (c *Converter) Now() time.Time {
	return c.now().In(c.loc)
}

// Convert parses raw and returns it in the display location.
// Zone-less input is treated as UTC.
func (c *Converter) Convert(raw string) time.Time {
	t, err := Parse(raw)
	if err != nil {
		return c.Now()
	}
	return t.In(c.loc)
}

// Format renders a JSON-decoded timestamp field for the browser.
// Strings are parsed, time.Time values are converted and anything else is now.
func (c *Converter) Format(value any) string {
	switch v := value.(type) {
	case string:
		return c.Convert(v).Format(Layout)
	case time.Time:
		return v.In(c.loc).Format(Layout)
	default:
		return c.Now().Format(Layout)
	}
}

// Parse reads an ISO-8601 timestamp with or without an offset.
func Parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
