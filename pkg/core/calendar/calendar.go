// Package calendar derives the per-day facts for a displayed month. Project
// is a pure function over the fetched collections; rendering and export both
// consume its output, which is what keeps them in agreement.
package calendar

import (
	"time"

	"github.com/ekaraca/shiftdash/pkg/core/dates"
	"github.com/ekaraca/shiftdash/pkg/core/model"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// DayCell is the derived view record for one day of the displayed month.
// Computed fresh on every projection, never mutated in place.
type DayCell struct {
	Date        time.Time
	DateKey     string
	Day         int
	IsWeekend   bool
	IsHoliday   bool
	HolidayName string
	Shifts      []model.Shift
	LeaveNames  []string

	// IsWorkingDay is true iff the day is neither weekend nor holiday;
	// only working days accept assignment changes.
	IsWorkingDay bool
	IsAssignable bool
}

// LeadingOffset returns how many blank cells precede day 1 in a
// Monday-first week grid. Sunday maps to 6.
func LeadingOffset(cursor store.Cursor) int {
	first := time.Date(cursor.Year, cursor.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}
	return offset
}

// Project maps the cursor month and the fetched collections to an ordered
// day-cell list. It is total over well-formed input: malformed records (bad
// dates, references to deleted members) are excluded, never propagated as
// errors, because partial data must still render.
func Project(cursor store.Cursor, shifts []model.Shift, holidays model.Holidays, leaveDays []model.LeaveDay, members []model.Member) []DayCell {
	memberSet := model.MemberSet(members)

	first := time.Date(cursor.Year, cursor.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(cursor.Year, cursor.Month, day, 0, 0, 0, 0, time.UTC)
		key := dates.Key(date)

		holidayName, isHoliday := lookupHoliday(holidays, key)
		isWeekend := dates.IsWeekend(date)
		isWorkingDay := !isWeekend && !isHoliday

		cells = append(cells, DayCell{
			Date:         date,
			DateKey:      key,
			Day:          day,
			IsWeekend:    isWeekend,
			IsHoliday:    isHoliday,
			HolidayName:  holidayName,
			Shifts:       shiftsOn(key, shifts, memberSet),
			LeaveNames:   leaveNamesOn(key, leaveDays, memberSet),
			IsWorkingDay: isWorkingDay,
			IsAssignable: isWorkingDay,
		})
	}
	return cells
}

// lookupHoliday checks the canonical key first and falls back to the
// midnight-UTC timestamp form, defending against key-format drift between
// the holiday producer and this consumer.
func lookupHoliday(holidays model.Holidays, key string) (string, bool) {
	if name, ok := holidays[key]; ok {
		return name, true
	}
	if name, ok := holidays[key+"T00:00:00Z"]; ok {
		return name, true
	}
	return "", false
}

// shiftsOn returns the shifts covering the keyed day. A shift is excluded
// when its member has been deleted, when either bound is missing or a zero
// sentinel, or when its range is inverted (a backend contract violation the
// projector must not paper over by swapping the bounds).
func shiftsOn(key string, shifts []model.Shift, memberSet map[int]model.Member) []model.Shift {
	var onDay []model.Shift
	for _, shift := range shifts {
		if _, ok := memberSet[shift.MemberID]; !ok {
			continue
		}

		startKey, err := dates.ToKey(shift.StartDate)
		if err != nil {
			continue
		}
		endKey, err := dates.ToKey(shift.EndDate)
		if err != nil {
			continue
		}
		if startKey == dates.ZeroKey || endKey == dates.ZeroKey {
			continue
		}
		if startKey > endKey {
			continue
		}

		if dates.InRange(key, startKey, endKey) {
			onDay = append(onDay, shift)
		}
	}
	return onDay
}

// leaveNamesOn resolves the display names of members on leave on the keyed
// day. The denormalized record name wins; otherwise the roster supplies it.
// Records for deleted members are excluded by the membership check.
func leaveNamesOn(key string, leaveDays []model.LeaveDay, memberSet map[int]model.Member) []string {
	var names []string
	for _, leave := range leaveDays {
		member, ok := memberSet[leave.MemberID]
		if !ok {
			continue
		}

		leaveKey, err := dates.ToKey(leave.LeaveDate)
		if err != nil || leaveKey != key {
			continue
		}

		name := leave.MemberName
		if name == "" {
			name = member.Name
		}
		names = append(names, name)
	}
	return names
}
