package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaraca/shiftdash/pkg/core/model"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

var june2024 = store.Cursor{Month: time.June, Year: 2024}

func roster() []model.Member {
	return []model.Member{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Deniz"},
	}
}

func TestProjectMonthShape(t *testing.T) {
	cells := Project(june2024, nil, nil, nil, nil)

	require.Len(t, cells, 30)
	assert.Equal(t, "2024-06-01", cells[0].DateKey)
	assert.Equal(t, "2024-06-30", cells[29].DateKey)
	for i, cell := range cells {
		assert.Equal(t, i+1, cell.Day)
	}
}

func TestProjectMultiDayShiftCoversEveryDayInclusive(t *testing.T) {
	shifts := []model.Shift{
		{ID: 10, MemberID: 1, MemberName: "Ana", StartDate: "2024-06-03", EndDate: "2024-06-05"},
	}

	cells := Project(june2024, shifts, nil, nil, roster())

	for day := 3; day <= 5; day++ {
		require.Len(t, cells[day-1].Shifts, 1, "day %d", day)
		assert.Equal(t, "Ana", cells[day-1].Shifts[0].MemberName)
	}
	assert.Empty(t, cells[1].Shifts) // June 2
	assert.Empty(t, cells[5].Shifts) // June 6
}

func TestProjectShiftDatesWithTimeComponentStillMatch(t *testing.T) {
	shifts := []model.Shift{
		{ID: 10, MemberID: 1, StartDate: "2024-06-03T00:00:00Z", EndDate: "2024-06-03T00:00:00Z"},
	}

	cells := Project(june2024, shifts, nil, nil, roster())

	assert.Len(t, cells[2].Shifts, 1)
}

func TestProjectExcludesShiftsOfDeletedMembers(t *testing.T) {
	shifts := []model.Shift{
		{ID: 10, MemberID: 7, MemberName: "Gone", StartDate: "2024-06-03", EndDate: "2024-06-03"},
		{ID: 11, MemberID: 1, MemberName: "Ana", StartDate: "2024-06-03", EndDate: "2024-06-03"},
	}

	cells := Project(june2024, shifts, nil, nil, roster())

	require.Len(t, cells[2].Shifts, 1)
	assert.Equal(t, 1, cells[2].Shifts[0].MemberID)
}

func TestProjectExcludesMalformedShifts(t *testing.T) {
	tests := []struct {
		name  string
		shift model.Shift
	}{
		{"zero start sentinel", model.Shift{ID: 1, MemberID: 1, StartDate: "0001-01-01T00:00:00Z", EndDate: "2024-06-03"}},
		{"zero end sentinel", model.Shift{ID: 2, MemberID: 1, StartDate: "2024-06-03", EndDate: "0001-01-01"}},
		{"inverted range", model.Shift{ID: 3, MemberID: 1, StartDate: "2024-06-10", EndDate: "2024-06-03"}},
		{"unparseable start", model.Shift{ID: 4, MemberID: 1, StartDate: "soon", EndDate: "2024-06-03"}},
		{"empty end", model.Shift{ID: 5, MemberID: 1, StartDate: "2024-06-03", EndDate: ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells := Project(june2024, []model.Shift{tc.shift}, nil, nil, roster())
			for _, cell := range cells {
				assert.Empty(t, cell.Shifts)
			}
		})
	}
}

func TestProjectHolidayFlags(t *testing.T) {
	january := store.Cursor{Month: time.January, Year: 2024}
	holidays := model.Holidays{"2024-01-01": "New Year"}

	cells := Project(january, nil, holidays, nil, nil)

	first := cells[0]
	assert.True(t, first.IsHoliday)
	assert.Equal(t, "New Year", first.HolidayName)
	assert.False(t, first.IsWorkingDay)
	assert.False(t, first.IsAssignable)

	second := cells[1]
	assert.False(t, second.IsHoliday)
	assert.True(t, second.IsWorkingDay)
}

func TestProjectHolidayTimestampKeyFallback(t *testing.T) {
	holidays := model.Holidays{"2024-06-05T00:00:00Z": "Founders Day"}

	cells := Project(june2024, nil, holidays, nil, nil)

	assert.True(t, cells[4].IsHoliday)
	assert.Equal(t, "Founders Day", cells[4].HolidayName)
}

func TestProjectWeekendAndHolidayAreOrthogonal(t *testing.T) {
	// June 1 2024 is a Saturday; marking it a holiday must not clear the
	// weekend flag, and a weekday holiday must not become a weekend.
	holidays := model.Holidays{"2024-06-01": "Kickoff", "2024-06-05": "Midweek Day"}

	cells := Project(june2024, nil, holidays, nil, nil)

	saturday := cells[0]
	assert.True(t, saturday.IsWeekend)
	assert.True(t, saturday.IsHoliday)
	assert.False(t, saturday.IsWorkingDay)

	wednesday := cells[4]
	assert.False(t, wednesday.IsWeekend)
	assert.True(t, wednesday.IsHoliday)
}

func TestProjectLeaveNames(t *testing.T) {
	leave := []model.LeaveDay{
		{ID: 1, MemberID: 1, MemberName: "Ana", LeaveDate: "2024-06-04"},
		{ID: 2, MemberID: 2, LeaveDate: "2024-06-04"}, // name resolved from roster
		{ID: 3, MemberID: 7, MemberName: "Gone", LeaveDate: "2024-06-04"},
	}

	cells := Project(june2024, nil, nil, leave, roster())

	assert.Equal(t, []string{"Ana", "Deniz"}, cells[3].LeaveNames)
	assert.Empty(t, cells[4].LeaveNames)
}

func TestProjectEmptyCollectionsStillRender(t *testing.T) {
	cells := Project(june2024, nil, nil, nil, nil)

	require.Len(t, cells, 30)
	for _, cell := range cells {
		assert.Empty(t, cell.Shifts)
		assert.Empty(t, cell.LeaveNames)
		assert.False(t, cell.IsHoliday)
	}
}

func TestLeadingOffsetMondayFirst(t *testing.T) {
	tests := []struct {
		name   string
		cursor store.Cursor
		want   int
	}{
		{"starts on Saturday", store.Cursor{Month: time.June, Year: 2024}, 5},
		{"starts on Monday", store.Cursor{Month: time.July, Year: 2024}, 0},
		{"starts on Sunday maps to six", store.Cursor{Month: time.December, Year: 2024}, 6},
		{"starts on Thursday", store.Cursor{Month: time.February, Year: 2024}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LeadingOffset(tc.cursor))
		})
	}
}

func TestProjectLeapFebruary(t *testing.T) {
	cells := Project(store.Cursor{Month: time.February, Year: 2024}, nil, nil, nil, nil)
	assert.Len(t, cells, 29)

	cells = Project(store.Cursor{Month: time.February, Year: 2023}, nil, nil, nil, nil)
	assert.Len(t, cells, 28)
}
