package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/calendar"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
)

const cellWidth = 4

// ShadeFunc picks the shade for one day.
type ShadeFunc func(calendar.CalendarDay) dominant.Shade

// RenderMonth writes grid as a month calendar. Days are painted with shade;
// today is underlined. A legend of the shades in use follows the grid.
func RenderMonth(w io.Writer, g calendar.Grid, days []calendar.CalendarDay, shade ShadeFunc, today time.Time) {
	if shade == nil {
		shade = dominant.DayShade
	}
	byDate := make(map[time.Time]calendar.CalendarDay, len(days))
	for _, d := range days {
		byDate[calendar.StartOfDay(d.Date)] = d
	}

	width := cellWidth * 7
	title := g.Month.Format("January 2006")
	fmt.Fprintln(w, StyleHeader.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, title)))

	var header strings.Builder
	for _, wd := range g.Weekdays() {
		header.WriteString(StyleWeekday.Render(fmt.Sprintf("%*s ", cellWidth-1, wd.String()[:2])))
	}
	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	legend := map[string]dominant.Shade{}
	for _, week := range g.Weeks() {
		var row strings.Builder
		for _, c := range week {
			if c.Blank {
				row.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			label := fmt.Sprintf("%*d", cellWidth-1, c.Date.Day())
			day, ok := byDate[calendar.StartOfDay(c.Date)]
			if !ok {
				day = calendar.CalendarDay{Date: c.Date, InMonth: c.InMonth}
			}
			s := shade(day)
			style := ShadeStyle(s)
			if !c.InMonth {
				style = StyleOutside
			} else if !s.None {
				legend[s.Label] = s
			}
			if calendar.SameDay(c.Date, today) {
				style = style.Inherit(StyleToday)
			}
			row.WriteString(style.Render(label) + " ")
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	if len(legend) == 0 {
		return
	}
	labels := make([]string, 0, len(legend))
	for l := range legend {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	var parts []string
	for _, l := range labels {
		parts = append(parts, HexStyle(legend[l].Color).Render("■")+" "+l)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(parts, "  "))
}
