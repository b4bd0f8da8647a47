package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

func TestReplaceNotifiesSubscribersInRegistrationOrder(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(Shifts, func() { order = append(order, "first") })
	s.Subscribe(Shifts, func() { order = append(order, "second") })
	s.Subscribe(Shifts, func() { order = append(order, "third") })

	s.ReplaceShifts([]model.Shift{{ID: 1}})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSubscriberSeesReplacedValue(t *testing.T) {
	s := New()

	var seen []model.Member
	s.Subscribe(Members, func() { seen = s.MembersList() })

	s.ReplaceMembers([]model.Member{{ID: 1, Name: "Ana"}})

	require.Len(t, seen, 1)
	assert.Equal(t, "Ana", seen[0].Name)
}

func TestNotifyOnUnchangedValue(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(Stats, func() { calls++ })

	s.ReplaceStats(nil)
	s.ReplaceStats(nil)

	// Replaces always notify, even when the value did not change.
	assert.Equal(t, 2, calls)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New()

	first, second := 0, 0
	unsubscribe := s.Subscribe(LeaveDays, func() { first++ })
	s.Subscribe(LeaveDays, func() { second++ })

	s.ReplaceLeaveDays(nil)
	unsubscribe()
	s.ReplaceLeaveDays(nil)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestSubscriptionsAreIndependentPerCollection(t *testing.T) {
	s := New()

	shiftCalls, memberCalls := 0, 0
	s.Subscribe(Shifts, func() { shiftCalls++ })
	s.Subscribe(Members, func() { memberCalls++ })

	s.ReplaceShifts(nil)

	assert.Equal(t, 1, shiftCalls)
	assert.Equal(t, 0, memberCalls)
}

func TestReplaceHolidaysNilBecomesEmptyMap(t *testing.T) {
	s := New()

	s.ReplaceHolidays(nil)

	holidays := s.HolidayMap()
	require.NotNil(t, holidays)
	_, ok := holidays["2024-01-01"]
	assert.False(t, ok)
}

func TestSetCursorRollsAcrossYearBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		month     int
		year      int
		wantMonth time.Month
		wantYear  int
	}{
		{"in range", 6, 2024, time.June, 2024},
		{"month zero rolls back", 0, 2024, time.December, 2023},
		{"month thirteen rolls forward", 13, 2024, time.January, 2025},
		{"far overflow", 25, 2024, time.January, 2026},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.SetCursor(tc.month, tc.year)

			cursor := s.Cursor()
			assert.Equal(t, tc.wantMonth, cursor.Month)
			assert.Equal(t, tc.wantYear, cursor.Year)
		})
	}
}

func TestSetCursorNotifiesCursorSubscribers(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(CursorKey, func() { calls++ })

	s.SetCursor(6, 2024)
	assert.Equal(t, 1, calls)
}

func TestTrySetBusySuppressesOverlap(t *testing.T) {
	s := New()

	require.True(t, s.TrySetBusy())
	assert.False(t, s.TrySetBusy())
	assert.True(t, s.Busy())

	s.SetBusy(false)
	assert.True(t, s.TrySetBusy())
}

func TestNewCursorDefaultsToCurrentMonth(t *testing.T) {
	s := New()
	now := time.Now()

	cursor := s.Cursor()
	assert.Equal(t, now.Month(), cursor.Month)
	assert.Equal(t, now.Year(), cursor.Year)
}
