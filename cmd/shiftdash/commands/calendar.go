package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ekaraca/shiftdash/pkg/core/calendar"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the shift calendar for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := navigateFromFlags(cmd, app); err != nil {
				return err
			}
			if err := app.Sync.LoadAll(app.Ctx); err != nil {
				return err
			}

			cursor := app.Store.Cursor()
			cells := calendar.Project(
				cursor,
				app.Store.ShiftsList(),
				app.Store.HolidayMap(),
				app.Store.LeaveDaysList(),
				app.Store.MembersList(),
			)
			renderCalendar(os.Stdout, cursor, cells)
			return nil
		},
	}
	addCursorFlags(cmd)
	return cmd
}

// addCursorFlags registers the month/year selection flags
func addCursorFlags(cmd *cobra.Command) {
	cmd.Flags().Int("month", 0, "Month to display (1-12, default: current)")
	cmd.Flags().Int("year", 0, "Year to display (default: current)")
}

// navigateFromFlags applies --month/--year to the view cursor. Values
// outside 1-12 roll into the adjacent year.
func navigateFromFlags(cmd *cobra.Command, app *AppContext) error {
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	if month == 0 && year == 0 {
		return nil
	}

	cursor := app.Store.Cursor()
	if month == 0 {
		month = int(cursor.Month)
	}
	if year == 0 {
		year = cursor.Year
	}
	app.Store.SetCursor(month, year)
	return nil
}
