// Package export flattens a projected month into rows and serializes them.
// Rows are derived from the same projection the calendar renders, so the two
// can never disagree about which shift, leave, or holiday applies to a day.
package export

import (
	"fmt"

	"github.com/ekaraca/shiftdash/pkg/core/calendar"
	"github.com/ekaraca/shiftdash/pkg/core/dates"
	"github.com/ekaraca/shiftdash/pkg/core/model"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// Category classifies one export row
type Category string

const (
	CategoryLongShift   Category = "Long Shift"
	CategoryNormalShift Category = "Normal Shift"
	CategoryOnLeave     Category = "On Leave"
	CategoryHoliday     Category = "Holiday"
	CategoryNoShift     Category = "No Shift"
)

// Row is one line of the flattened month
type Row struct {
	DateKey     string   `json:"date"`
	Weekday     string   `json:"weekday"`
	MemberName  string   `json:"member"`
	Category    Category `json:"category"`
	HolidayName string   `json:"holiday"`
}

// Header lists the column names, in output order
var Header = []string{"Date", "Weekday", "Member", "Category", "Holiday"}

func (r Row) fields() []string {
	return []string{r.DateKey, r.Weekday, r.MemberName, string(r.Category), r.HolidayName}
}

// ToRows flattens the cursor month to export rows. Precedence per day: one
// row per shift; with no shift, one row per leave entry; with neither, a
// holiday row or a no-shift row for a plain working day. Weekend days with
// nothing on them produce no row.
func ToRows(cursor store.Cursor, shifts []model.Shift, holidays model.Holidays, leaveDays []model.LeaveDay, members []model.Member) []Row {
	cells := calendar.Project(cursor, shifts, holidays, leaveDays, members)

	var rows []Row
	for _, cell := range cells {
		weekday := dates.WeekdayName(cell.DateKey)

		switch {
		case len(cell.Shifts) > 0:
			for _, shift := range cell.Shifts {
				category := CategoryNormalShift
				if shift.IsLongShift {
					category = CategoryLongShift
				}
				rows = append(rows, Row{
					DateKey:     cell.DateKey,
					Weekday:     weekday,
					MemberName:  shift.MemberName,
					Category:    category,
					HolidayName: cell.HolidayName,
				})
			}
		case len(cell.LeaveNames) > 0:
			for _, name := range cell.LeaveNames {
				rows = append(rows, Row{
					DateKey:     cell.DateKey,
					Weekday:     weekday,
					MemberName:  name,
					Category:    CategoryOnLeave,
					HolidayName: cell.HolidayName,
				})
			}
		case cell.IsHoliday:
			rows = append(rows, Row{
				DateKey:     cell.DateKey,
				Weekday:     weekday,
				Category:    CategoryHoliday,
				HolidayName: cell.HolidayName,
			})
		case !cell.IsWeekend:
			rows = append(rows, Row{
				DateKey:  cell.DateKey,
				Weekday:  weekday,
				Category: CategoryNoShift,
			})
		}
	}
	return rows
}

// Filename names an export file after the displayed month, e.g.
// shift-plan-June-2024.csv
func Filename(cursor store.Cursor, ext string) string {
	return fmt.Sprintf("shift-plan-%s-%d.%s", cursor.Month.String(), cursor.Year, ext)
}
