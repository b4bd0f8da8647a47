package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ekaraca/shiftdash/pkg/core/calendar"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// renderCalendar prints the projected month: a Monday-first grid of day
// numbers with fact markers, then one detail line per day that has anything
// on it. Both views come from the same day-cell list the exporter consumes.
func renderCalendar(w io.Writer, cursor store.Cursor, cells []calendar.DayCell) {
	fmt.Fprintf(w, "\n%s %d\n\n", cursor.Month.String(), cursor.Year)
	fmt.Fprintln(w, " Mon  Tue  Wed  Thu  Fri  Sat  Sun")

	column := calendar.LeadingOffset(cursor)
	line := strings.Repeat("     ", column)
	for _, cell := range cells {
		line += fmt.Sprintf(" %2d%s ", cell.Day, marker(cell))
		column++
		if column == 7 {
			fmt.Fprintln(w, strings.TrimRight(line, " "))
			line = ""
			column = 0
		}
	}
	if line != "" {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(w, "\n  * holiday   + shift   ~ leave")

	var details []string
	for _, cell := range cells {
		for _, note := range dayNotes(cell) {
			details = append(details, fmt.Sprintf("  %2d  %s", cell.Day, note))
		}
	}
	if len(details) > 0 {
		fmt.Fprintln(w)
		for _, d := range details {
			fmt.Fprintln(w, d)
		}
	}
	fmt.Fprintln(w)
}

func marker(cell calendar.DayCell) string {
	switch {
	case cell.IsHoliday:
		return "*"
	case len(cell.Shifts) > 0:
		return "+"
	case len(cell.LeaveNames) > 0:
		return "~"
	default:
		return " "
	}
}

func dayNotes(cell calendar.DayCell) []string {
	var notes []string
	if cell.IsHoliday {
		notes = append(notes, cell.HolidayName+" (holiday)")
	}
	for _, shift := range cell.Shifts {
		name := shift.MemberName
		if name == "" {
			name = "Unknown"
		}
		if shift.IsLongShift {
			notes = append(notes, name+" (long shift)")
		} else {
			notes = append(notes, name)
		}
	}
	for _, name := range cell.LeaveNames {
		notes = append(notes, name+" (on leave)")
	}
	return notes
}
