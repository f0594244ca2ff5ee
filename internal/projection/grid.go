package projection

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/coachplan/internal/error_values"
)

// GridCells is the size of a month grid: six Monday-first weeks.
const GridCells = 42

type CalendarCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
}

// BuildMonthGrid lays out the given month on a 6x7 grid whose first column is
// always Monday. Cells before the 1st and after the last day of the month are
// filled with the neighbouring months' dates and flagged as not in month.
func BuildMonthGrid(year int, month time.Month) ([]CalendarCell, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", errorvalues.ErrInvalidDate, int(month))
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d", errorvalues.ErrInvalidDate, year)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) + 6) % 7
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]CalendarCell, 0, GridCells)
	for i := lead; i > 0; i-- {
		cells = append(cells, CalendarCell{Date: first.AddDate(0, 0, -i)})
	}
	for d := 0; d < daysInMonth; d++ {
		cells = append(cells, CalendarCell{Date: first.AddDate(0, 0, d), InMonth: true})
	}
	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells) < GridCells; i++ {
		cells = append(cells, CalendarCell{Date: next.AddDate(0, 0, i)})
	}
	return cells, nil
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
