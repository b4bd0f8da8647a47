package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ekaraca/shiftdash/pkg/core/dates"
	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// LoadAll performs the initial load: holidays first, then the member roster
// and stats together, then the cursor window's shifts and leave days.
func (c *Controller) LoadAll(ctx context.Context) error {
	c.store.SetBusy(true)
	defer c.store.SetBusy(false)

	if err := c.runGroup(ctx, c.holidaysStep()); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return err
		}
		// Holidays are decorative; carry on with an empty map.
		c.logger.Warn("holiday load failed", zap.Error(err))
	}

	if err := c.runParallel(ctx, c.membersStep(), c.statsStep()); err != nil {
		return err
	}
	return c.runParallel(ctx, c.shiftsStep(), c.leaveDaysStep())
}

// Refresh re-issues the periodic fetch set. When another invalidation group
// is already in flight the refresh is skipped rather than stacked on top;
// replaces are idempotent, so the next tick converges.
func (c *Controller) Refresh(ctx context.Context) error {
	if !c.store.TrySetBusy() {
		c.logger.Debug("refresh skipped, sync already in flight")
		return nil
	}
	defer c.store.SetBusy(false)

	return c.runGroup(ctx,
		c.membersStep(),
		c.statsStep(),
		c.shiftsStep(),
		c.leaveDaysStep(),
	)
}

// Navigate moves the view cursor and fetches the new window. Shifts and
// leave days have no ordering dependency between them.
func (c *Controller) Navigate(ctx context.Context, month, year int) error {
	c.store.SetCursor(month, year)

	c.store.SetBusy(true)
	defer c.store.SetBusy(false)
	return c.runParallel(ctx, c.shiftsStep(), c.leaveDaysStep())
}

// NavigatePrevious moves the cursor one month back
func (c *Controller) NavigatePrevious(ctx context.Context) error {
	cursor := c.store.Cursor()
	return c.Navigate(ctx, int(cursor.Month)-1, cursor.Year)
}

// NavigateNext moves the cursor one month forward
func (c *Controller) NavigateNext(ctx context.Context) error {
	cursor := c.store.Cursor()
	return c.Navigate(ctx, int(cursor.Month)+1, cursor.Year)
}

// CreateMember adds a member and refetches everything derived from the
// roster. Stats and window shifts both reference member ids, so they reload
// after the roster to avoid observing counts for an unknown member.
func (c *Controller) CreateMember(ctx context.Context, name string) (*model.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "member name must not be empty"}
	}

	var created *model.Member
	err := c.mutate(ctx, func(ctx context.Context) error {
		member, err := c.backend.CreateMember(ctx, name)
		if err != nil {
			return err
		}
		created = member
		c.logger.Info("member created", zap.Int("id", member.ID), zap.String("name", member.Name))
		return nil
	}, c.rosterGroup)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteMember removes a member and refetches the roster-derived
// collections in dependency order.
func (c *Controller) DeleteMember(ctx context.Context, id int) error {
	if id <= 0 {
		return &ValidationError{Field: "member", Message: "a member must be selected"}
	}
	err := c.mutate(ctx, func(ctx context.Context) error {
		return c.backend.DeleteMember(ctx, id)
	}, c.rosterGroup)
	return err
}

// GeneratePlan asks the backend to build shifts over [startKey, endKey].
// An inverted range is rejected before any backend call.
func (c *Controller) GeneratePlan(ctx context.Context, startKey, endKey string) (int, error) {
	if err := validateRange(startKey, endKey); err != nil {
		return 0, err
	}

	var created int
	err := c.mutate(ctx, func(ctx context.Context) error {
		shifts, err := c.backend.GenerateShifts(ctx, startKey, endKey)
		if err != nil {
			return err
		}
		created = len(shifts)
		return nil
	}, c.planGroup)
	return created, err
}

// ClearShifts deletes every shift, then reloads the window and the stats
func (c *Controller) ClearShifts(ctx context.Context) error {
	err := c.mutate(ctx, c.backend.ClearShifts, c.planGroup)
	return err
}

// ReassignShift moves the assignment on one date to another member
func (c *Controller) ReassignShift(ctx context.Context, dateKey string, memberID int) error {
	if memberID <= 0 {
		return &ValidationError{Field: "member", Message: "a member must be selected"}
	}
	key, err := dates.ToKey(dateKey)
	if err != nil {
		return &ValidationError{Field: "date", Message: "invalid date"}
	}

	err = c.mutate(ctx, func(ctx context.Context) error {
		return c.backend.ReassignShift(ctx, key, memberID)
	}, c.planGroup)
	return err
}

// AddLeave records leave for one member across an inclusive date range
func (c *Controller) AddLeave(ctx context.Context, memberID int, startKey, endKey string) error {
	if memberID <= 0 {
		return &ValidationError{Field: "member", Message: "a member must be selected"}
	}
	if err := validateRange(startKey, endKey); err != nil {
		return err
	}

	err := c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.backend.CreateLeaveDays(ctx, memberID, startKey, endKey)
		return err
	}, c.leaveGroup)
	return err
}

// AddLeaveDates records leave on each listed day, one backend record per
// day. Used by callers that expand a recurrence rule into discrete dates.
func (c *Controller) AddLeaveDates(ctx context.Context, memberID int, keys []string) error {
	if memberID <= 0 {
		return &ValidationError{Field: "member", Message: "a member must be selected"}
	}
	if len(keys) == 0 {
		return &ValidationError{Field: "dates", Message: "no dates to record"}
	}
	for _, key := range keys {
		if _, err := dates.ToKey(key); err != nil {
			return &ValidationError{Field: "dates", Message: "invalid date " + key}
		}
	}

	err := c.mutate(ctx, func(ctx context.Context) error {
		for _, key := range keys {
			if _, err := c.backend.CreateLeaveDays(ctx, memberID, key, key); err != nil {
				return err
			}
		}
		return nil
	}, c.leaveGroup)
	return err
}

// RemoveLeave deletes one leave-day record
func (c *Controller) RemoveLeave(ctx context.Context, id int) error {
	if id <= 0 {
		return &ValidationError{Field: "leave", Message: "a leave day must be selected"}
	}
	err := c.mutate(ctx, func(ctx context.Context) error {
		return c.backend.DeleteLeaveDay(ctx, id)
	}, c.leaveGroup)
	return err
}

// Logout invalidates the session server-side. Backend errors are ignored;
// the caller clears the local credential either way.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.backend.Logout(ctx); err != nil {
		c.logger.Debug("logout call failed", zap.Error(err))
	}
}

// mutate runs the backend mutation, then the invalidation group it triggers.
// The busy flag covers both so the periodic refresh stays out of the way.
func (c *Controller) mutate(ctx context.Context, call func(context.Context) error, group func(context.Context) error) error {
	if c.sessionDead.Load() {
		return ErrUnauthorized
	}

	c.store.SetBusy(true)
	defer c.store.SetBusy(false)

	if err := call(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.handleUnauthorized()
			return ErrUnauthorized
		}
		return err
	}
	return group(ctx)
}

// rosterGroup: members -> stats -> shifts(window) -> leave-days(window).
// Fetching stats or shifts before the roster update would let a projection
// observe records referencing a just-deleted member.
func (c *Controller) rosterGroup(ctx context.Context) error {
	return c.runGroup(ctx,
		c.membersStep(),
		c.statsStep(),
		c.shiftsStep(),
		c.leaveDaysStep(),
	)
}

// planGroup: shifts(window) -> stats
func (c *Controller) planGroup(ctx context.Context) error {
	return c.runGroup(ctx, c.shiftsStep(), c.statsStep())
}

// leaveGroup: leave-days(window)
func (c *Controller) leaveGroup(ctx context.Context) error {
	return c.runGroup(ctx, c.leaveDaysStep())
}

func validateRange(startKey, endKey string) error {
	start, err := dates.ToKey(startKey)
	if err != nil {
		return &ValidationError{Field: "start_date", Message: "invalid start date"}
	}
	end, err := dates.ToKey(endKey)
	if err != nil {
		return &ValidationError{Field: "end_date", Message: "invalid end date"}
	}
	if start > end {
		return &ValidationError{Field: "end_date", Message: "start date cannot be after end date"}
	}
	return nil
}
