package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaraca/shiftdash/pkg/core/calendar"
	"github.com/ekaraca/shiftdash/pkg/core/model"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

var june2024 = store.Cursor{Month: time.June, Year: 2024}

func roster() []model.Member {
	return []model.Member{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Deniz"}}
}

func TestToRowsCategoryPrecedence(t *testing.T) {
	shifts := []model.Shift{
		{ID: 1, MemberID: 1, MemberName: "Ana", StartDate: "2024-06-03", EndDate: "2024-06-03", IsLongShift: true},
		{ID: 2, MemberID: 2, MemberName: "Deniz", StartDate: "2024-06-04", EndDate: "2024-06-04"},
	}
	holidays := model.Holidays{"2024-06-05": "Founders Day", "2024-06-03": "Overlap Day"}
	leave := []model.LeaveDay{
		{ID: 1, MemberID: 2, MemberName: "Deniz", LeaveDate: "2024-06-06"},
	}

	rows := ToRows(june2024, shifts, holidays, leave, roster())
	byDate := map[string][]Row{}
	for _, row := range rows {
		byDate[row.DateKey] = append(byDate[row.DateKey], row)
	}

	// A shift on a holiday still exports as a shift row, holiday name attached.
	require.Len(t, byDate["2024-06-03"], 1)
	assert.Equal(t, CategoryLongShift, byDate["2024-06-03"][0].Category)
	assert.Equal(t, "Overlap Day", byDate["2024-06-03"][0].HolidayName)

	require.Len(t, byDate["2024-06-04"], 1)
	assert.Equal(t, CategoryNormalShift, byDate["2024-06-04"][0].Category)

	require.Len(t, byDate["2024-06-05"], 1)
	assert.Equal(t, CategoryHoliday, byDate["2024-06-05"][0].Category)
	assert.Equal(t, "Founders Day", byDate["2024-06-05"][0].HolidayName)

	require.Len(t, byDate["2024-06-06"], 1)
	assert.Equal(t, CategoryOnLeave, byDate["2024-06-06"][0].Category)
	assert.Equal(t, "Deniz", byDate["2024-06-06"][0].MemberName)

	// A bare working day exports as a no-shift row.
	require.Len(t, byDate["2024-06-07"], 1)
	assert.Equal(t, CategoryNoShift, byDate["2024-06-07"][0].Category)
}

func TestToRowsEmptyWeekendProducesNoRow(t *testing.T) {
	rows := ToRows(june2024, nil, nil, nil, nil)

	for _, row := range rows {
		weekday := row.Weekday
		assert.NotEqual(t, "Saturday", weekday, "weekend day %s exported", row.DateKey)
		assert.NotEqual(t, "Sunday", weekday, "weekend day %s exported", row.DateKey)
		assert.Equal(t, CategoryNoShift, row.Category)
	}
	// June 2024 has 20 weekdays.
	assert.Len(t, rows, 20)
}

func TestToRowsMultipleShiftsOneRowEach(t *testing.T) {
	shifts := []model.Shift{
		{ID: 1, MemberID: 1, MemberName: "Ana", StartDate: "2024-06-03", EndDate: "2024-06-03"},
		{ID: 2, MemberID: 2, MemberName: "Deniz", StartDate: "2024-06-03", EndDate: "2024-06-03"},
	}

	rows := ToRows(june2024, shifts, nil, nil, roster())

	var onDay []Row
	for _, row := range rows {
		if row.DateKey == "2024-06-03" {
			onDay = append(onDay, row)
		}
	}
	require.Len(t, onDay, 2)
	assert.Equal(t, "Ana", onDay[0].MemberName)
	assert.Equal(t, "Deniz", onDay[1].MemberName)
}

// The export must agree with the calendar about every day: same shifts, same
// holidays, same leave. Both derive from the shared projection, and this
// pins that contract.
func TestToRowsAgreesWithProjection(t *testing.T) {
	shifts := []model.Shift{
		{ID: 1, MemberID: 1, MemberName: "Ana", StartDate: "2024-06-03", EndDate: "2024-06-05"},
		{ID: 2, MemberID: 7, MemberName: "Gone", StartDate: "2024-06-10", EndDate: "2024-06-10"},
		{ID: 3, MemberID: 2, MemberName: "Deniz", StartDate: "2024-06-20", EndDate: "2024-06-10"},
	}
	holidays := model.Holidays{"2024-06-05": "Founders Day"}
	leave := []model.LeaveDay{{ID: 1, MemberID: 2, MemberName: "Deniz", LeaveDate: "2024-06-11"}}

	cells := calendar.Project(june2024, shifts, holidays, leave, roster())
	rows := ToRows(june2024, shifts, holidays, leave, roster())

	rowsByDate := map[string][]Row{}
	for _, row := range rows {
		rowsByDate[row.DateKey] = append(rowsByDate[row.DateKey], row)
	}

	for _, cell := range cells {
		dayRows := rowsByDate[cell.DateKey]
		switch {
		case len(cell.Shifts) > 0:
			require.Len(t, dayRows, len(cell.Shifts), "day %s", cell.DateKey)
			for i, shift := range cell.Shifts {
				assert.Equal(t, shift.MemberName, dayRows[i].MemberName)
			}
		case len(cell.LeaveNames) > 0:
			require.Len(t, dayRows, len(cell.LeaveNames), "day %s", cell.DateKey)
			for _, row := range dayRows {
				assert.Equal(t, CategoryOnLeave, row.Category)
			}
		case cell.IsHoliday:
			require.Len(t, dayRows, 1, "day %s", cell.DateKey)
			assert.Equal(t, CategoryHoliday, dayRows[0].Category)
		case cell.IsWeekend:
			assert.Empty(t, dayRows, "day %s", cell.DateKey)
		default:
			require.Len(t, dayRows, 1, "day %s", cell.DateKey)
			assert.Equal(t, CategoryNoShift, dayRows[0].Category)
		}
		if cell.IsHoliday {
			for _, row := range dayRows {
				assert.Equal(t, cell.HolidayName, row.HolidayName)
			}
		}
	}
}

func TestSerializeCSVQuoting(t *testing.T) {
	rows := []Row{
		{DateKey: "2024-06-03", Weekday: "Monday", MemberName: `Ana "Ace", QA`, Category: CategoryNormalShift},
	}

	out, err := SerializeCSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Weekday,Member,Category,Holiday", lines[0])
	assert.Contains(t, lines[1], `"Ana ""Ace"", QA"`)
}

func TestSerializeJSONEnvelope(t *testing.T) {
	rows := []Row{
		{DateKey: "2024-06-03", Weekday: "Monday", MemberName: "Ana", Category: CategoryNormalShift},
	}

	out, err := SerializeJSON(june2024, rows)
	require.NoError(t, err)

	var envelope struct {
		Month string `json:"month"`
		Year  int    `json:"year"`
		Data  []Row  `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "June", envelope.Month)
	assert.Equal(t, 2024, envelope.Year)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Ana", envelope.Data[0].MemberName)
}

func TestSerializeJSONEmptyMonthHasEmptyArray(t *testing.T) {
	out, err := SerializeJSON(june2024, nil)
	require.NoError(t, err)
	assert.Contains(t, out, `"data": []`)
}

func TestSerializeTableEscapesFields(t *testing.T) {
	rows := []Row{
		{DateKey: "2024-06-03", Weekday: "Monday", MemberName: "<b>Ana</b>", Category: CategoryNormalShift},
	}

	out := SerializeTable(rows)

	assert.Contains(t, out, "&lt;b&gt;Ana&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Ana</b>")
	assert.Contains(t, out, "<th>Date</th>")
}

func TestSerializeXLSXProducesWorkbook(t *testing.T) {
	rows := []Row{
		{DateKey: "2024-06-03", Weekday: "Monday", MemberName: "Ana", Category: CategoryLongShift},
	}

	data, err := SerializeXLSX(june2024, rows)
	require.NoError(t, err)
	// XLSX files are zip archives.
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "shift-plan-June-2024.csv", Filename(june2024, "csv"))
	assert.Equal(t, "shift-plan-December-2025.xlsx", Filename(store.Cursor{Month: time.December, Year: 2025}, "xlsx"))
}
