// Package datestamp implements OAI-PMH datestamp formatting and parsing
// at the protocol's two granularities (2.7.1 in the protocol text).
package datestamp

import (
	"fmt"
	"strings"
	"time"
)

// Layouts for the two protocol granularities.
const (
	LayoutDay    = "2006-01-02"
	LayoutSecond = "2006-01-02T15:04:05Z"
)

// Granularity is a repository's datestamp resolution.
type Granularity string

const (
	Day    Granularity = "day"
	Second Granularity = "second"
)

// Valid reports whether the granularity is known.
func (g Granularity) Valid() bool {
	return g == Day || g == Second
}

// Layout returns the time layout for the granularity.
func (g Granularity) Layout() string {
	if g == Day {
		return LayoutDay
	}
	return LayoutSecond
}

// Literal returns the protocol spelling advertised by Identify.
func (g Granularity) Literal() string {
	if g == Day {
		return "YYYY-MM-DD"
	}
	return "YYYY-MM-DDThh:mm:ssZ"
}

// Format renders t as a datestamp at granularity g. Times are always
// rendered in UTC, truncated to whole units of the granularity.
func Format(t time.Time, g Granularity) string {
	return t.UTC().Truncate(time.Second).Format(g.Layout())
}

// FormatUTC renders t at second granularity, the form required for
// responseDate regardless of the repository's own granularity.
func FormatUTC(t time.Time) string {
	return Format(t, Second)
}

// Parse reads a datestamp at either granularity. Day-granularity values
// parse to midnight UTC. Formatting a second-granularity UTC value and
// parsing it back yields the identical instant.
func Parse(s string) (time.Time, error) {
	layout := LayoutDay
	if strings.ContainsRune(s, 'T') {
		layout = LayoutSecond
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datestamp %q: %w", s, err)
	}
	return t, nil
}
