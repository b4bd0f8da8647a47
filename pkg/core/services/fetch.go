package services

import (
	"context"

	"github.com/ekaraca/shiftdash/pkg/core/dates"
	"github.com/ekaraca/shiftdash/pkg/core/model"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// Each fetch step replaces its collection wholesale on success and resets it
// to the safe empty value on failure, so the store never holds a stale value
// for a collection whose refetch failed.

func (c *Controller) membersStep() fetchStep {
	return fetchStep{collection: store.Members, run: func(ctx context.Context) error {
		members, err := c.backend.Members(ctx)
		if err != nil {
			c.store.ReplaceMembers(nil)
			return err
		}
		c.store.ReplaceMembers(members)
		return nil
	}}
}

func (c *Controller) statsStep() fetchStep {
	return fetchStep{collection: store.Stats, run: func(ctx context.Context) error {
		stats, err := c.backend.Stats(ctx)
		if err != nil {
			c.store.ReplaceStats(nil)
			return err
		}
		c.store.ReplaceStats(stats)
		return nil
	}}
}

func (c *Controller) holidaysStep() fetchStep {
	return fetchStep{collection: store.Holidays, run: func(ctx context.Context) error {
		holidays, err := c.backend.Holidays(ctx)
		if err != nil {
			c.store.ReplaceHolidays(model.Holidays{})
			return err
		}
		c.store.ReplaceHolidays(holidays)
		return nil
	}}
}

// shiftsStep fetches the shifts overlapping the current cursor month
func (c *Controller) shiftsStep() fetchStep {
	return fetchStep{collection: store.Shifts, run: func(ctx context.Context) error {
		startKey, endKey := c.window()
		shifts, err := c.backend.Shifts(ctx, startKey, endKey)
		if err != nil {
			c.store.ReplaceShifts(nil)
			return err
		}
		c.store.ReplaceShifts(shifts)
		return nil
	}}
}

// leaveDaysStep fetches the leave days within the current cursor month
func (c *Controller) leaveDaysStep() fetchStep {
	return fetchStep{collection: store.LeaveDays, run: func(ctx context.Context) error {
		startKey, endKey := c.window()
		leaveDays, err := c.backend.LeaveDays(ctx, startKey, endKey)
		if err != nil {
			c.store.ReplaceLeaveDays(nil)
			return err
		}
		c.store.ReplaceLeaveDays(leaveDays)
		return nil
	}}
}

// window returns the date-key bounds of the cursor month
func (c *Controller) window() (startKey, endKey string) {
	cursor := c.store.Cursor()
	return dates.MonthWindow(cursor.Year, cursor.Month)
}
