// Package calendar builds month grids and groups records by calendar day.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/recurrence"
)

// ErrInvalidLayout is returned by ParseLayout for unknown layout names.
var ErrInvalidLayout = errors.New("invalid calendar layout")

// Layout selects how a month is laid out on the grid.
type Layout string

const (
	// LayoutPadded places the month's days after blank cells up to the first
	// weekday, then pads with blanks to a full week.
	LayoutPadded Layout = "padded"
	// LayoutWeekAligned fills whole weeks, including days of the neighbouring
	// months, so no cell is blank.
	LayoutWeekAligned Layout = "week"
)

// ParseLayout reads a layout name. Empty input is LayoutPadded.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "padded", "blank", "month":
		return LayoutPadded, nil
	case "week", "weeks", "week-aligned", "full":
		return LayoutWeekAligned, nil
	default:
		return "", fmt.Errorf("%w: %q (want padded or week)", ErrInvalidLayout, name)
	}
}

// ParseWeekday reads a weekday name or its three-letter abbreviation.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if n == full || n == full[:3] {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("unknown weekday %q", name)
}

// Cell is one grid position. Blank cells carry no date.
type Cell struct {
	Date    time.Time `json:"date,omitempty"`
	Blank   bool      `json:"blank,omitempty"`
	InMonth bool      `json:"inMonth"`
}

// Grid is a month laid out in whole weeks.
type Grid struct {
	Month     time.Time    `json:"month"`
	Layout    Layout       `json:"layout"`
	WeekStart time.Weekday `json:"weekStart"`
	Cells     []Cell       `json:"cells"`
}

// BuildGrid lays out month. The length of Cells is always a positive multiple
// of 7, and the month's days appear once each in ascending order.
func BuildGrid(month time.Time, layout Layout, weekStart time.Weekday) Grid {
	first := FirstOfMonth(month)
	days := DaysIn(month)
	lead := leadingDays(first, weekStart)

	g := Grid{Month: first, Layout: layout, WeekStart: weekStart}

	if layout == LayoutWeekAligned {
		start := first.AddDate(0, 0, -lead)
		total := roundUpToWeek(lead + days)
		g.Cells = make([]Cell, 0, total)
		for i := 0; i < total; i++ {
			d := start.AddDate(0, 0, i)
			g.Cells = append(g.Cells, Cell{Date: d, InMonth: d.Month() == first.Month()})
		}
		return g
	}

	total := roundUpToWeek(lead + days)
	g.Cells = make([]Cell, 0, total)
	for i := 0; i < lead; i++ {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}
	for i := 0; i < days; i++ {
		g.Cells = append(g.Cells, Cell{Date: first.AddDate(0, 0, i), InMonth: true})
	}
	for len(g.Cells) < total {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}
	return g
}

// Weeks splits the grid into rows of seven cells.
func (g Grid) Weeks() [][]Cell {
	rows := make([][]Cell, 0, len(g.Cells)/7)
	for i := 0; i+7 <= len(g.Cells); i += 7 {
		rows = append(rows, g.Cells[i:i+7])
	}
	return rows
}

// Dates returns the populated cells' dates in grid order.
func (g Grid) Dates() []time.Time {
	out := make([]time.Time, 0, len(g.Cells))
	for _, c := range g.Cells {
		if !c.Blank {
			out = append(out, c.Date)
		}
	}
	return out
}

// Weekdays returns the column headers' weekdays in order.
func (g Grid) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = time.Weekday((int(g.WeekStart) + i) % 7)
	}
	return out
}

// FirstOfMonth returns midnight on the 1st of t's month in t's location.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return FirstOfMonth(month).AddDate(0, 1, -1).Day()
}

// ParseMonth reads "2006-01" or "January 2006" in loc.
func ParseMonth(v string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s := strings.TrimSpace(v)
	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized month %q (want YYYY-MM)", v)
}

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	return recurrence.StartOfDay(t)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b.In(a.Location())))
}

func leadingDays(first time.Time, weekStart time.Weekday) int {
	return (int(first.Weekday()) - int(weekStart) + 7) % 7
}

func roundUpToWeek(n int) int {
	return ((n + 6) / 7) * 7
}
