package projection_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridFebruary2024(t *testing.T) {
	cells, err := projection.BuildMonthGrid(2024, time.February)
	require.NoError(t, err)
	require.Len(t, cells, projection.GridCells)
	assert.Equal(t, time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC), cells[0].Date)
	assert.False(t, cells[0].InMonth)

	var lastInMonth projection.CalendarCell
	for _, c := range cells {
		if c.InMonth {
			lastInMonth = c
		}
	}
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), lastInMonth.Date)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), cells[41].Date)
}

func TestBuildMonthGridStartingOnMonday(t *testing.T) {
	// April 2024 starts on a Monday: no leading cells, 12 trailing ones.
	cells, err := projection.BuildMonthGrid(2024, time.April)
	require.NoError(t, err)
	require.Len(t, cells, projection.GridCells)
	assert.True(t, cells[0].InMonth)
	assert.Equal(t, 1, cells[0].Date.Day())
	assert.False(t, cells[30].InMonth)
	assert.Equal(t, time.May, cells[41].Date.Month())
	assert.Equal(t, 12, cells[41].Date.Day())
}

func TestBuildMonthGridShape(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			cells, err := projection.BuildMonthGrid(year, month)
			require.NoError(t, err)
			require.Len(t, cells, projection.GridCells, "%d-%02d", year, month)
			inMonth := 0
			for i, c := range cells {
				if i%7 == 0 {
					assert.Equal(t, time.Monday, c.Date.Weekday(), "%d-%02d row %d", year, month, i/7)
				}
				if i > 0 {
					assert.Equal(t, 1, projection.DaysBetween(cells[i-1].Date, c.Date))
				}
				if c.InMonth {
					inMonth++
					assert.Equal(t, month, c.Date.Month())
				}
			}
			assert.Equal(t, projection.DaysInMonth(year, month), inMonth, "%d-%02d", year, month)
		}
	}
}

func TestBuildMonthGridInvalidInput(t *testing.T) {
	testCases := []struct {
		Desc  string
		Year  int
		Month time.Month
	}{
		{Desc: "month zero", Year: 2024, Month: 0},
		{Desc: "month thirteen", Year: 2024, Month: 13},
		{Desc: "year zero", Year: 0, Month: time.March},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			cells, err := projection.BuildMonthGrid(tc.Year, tc.Month)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
			assert.Nil(t, cells)
		})
	}
}
