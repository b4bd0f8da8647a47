package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ekaraca/shiftdash/pkg/core/calendar"
	"github.com/ekaraca/shiftdash/pkg/core/services"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// WatchCmd creates the watch command: render the calendar, re-render on
// every relevant store change, and refresh from the backend periodically.
func WatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the calendar and keep it fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := navigateFromFlags(cmd, app); err != nil {
				return err
			}

			// A change to any projected collection schedules one redraw;
			// the buffered channel coalesces bursts from one sync group.
			dirty := make(chan struct{}, 1)
			markDirty := func() {
				select {
				case dirty <- struct{}{}:
				default:
				}
			}
			for _, c := range []store.Collection{store.Shifts, store.Holidays, store.LeaveDays, store.Members, store.CursorKey} {
				defer app.Store.Subscribe(c, markDirty)()
			}

			if err := app.Sync.LoadAll(app.Ctx); err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					return err
				}
				// Partial data still renders; the next tick may recover.
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
			redraw(app)

			ticker := time.NewTicker(app.Cfg.RefreshInterval())
			defer ticker.Stop()
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			for {
				select {
				case <-stop:
					fmt.Println("\nStopped")
					return nil
				case <-dirty:
					redraw(app)
				case <-ticker.C:
					if err := app.Sync.Refresh(app.Ctx); err != nil {
						if errors.Is(err, services.ErrUnauthorized) {
							return err
						}
						app.Logger.Warn("refresh failed", zap.Error(err))
					}
				}
			}
		},
	}
	addCursorFlags(cmd)
	return cmd
}

func redraw(app *AppContext) {
	cursor := app.Store.Cursor()
	cells := calendar.Project(
		cursor,
		app.Store.ShiftsList(),
		app.Store.HolidayMap(),
		app.Store.LeaveDaysList(),
		app.Store.MembersList(),
	)
	fmt.Print("\033[H\033[2J")
	renderCalendar(os.Stdout, cursor, cells)
	fmt.Printf("Updated %s (Ctrl-C to stop)\n", time.Now().Format("15:04:05"))
}
