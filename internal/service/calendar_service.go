package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/internal/snapshot"
	"github.com/limbo/coachplan/pkg/entity"
)

const icsProductID = "-//coachplan//calendar//EN"

type CalendarService struct {
	loader SnapshotLoaderI
	now    Clock
}

func NewCalendarService(loader SnapshotLoaderI, clock Clock) *CalendarService {
	if loader == nil {
		log.Fatal("on calendar service provided nil loader")
	}
	return &CalendarService{
		loader: loader,
		now:    orNow(clock),
	}
}

func (cs *CalendarService) Month(ctx context.Context, sess entity.Session, clientID uuid.UUID, year int, month time.Month) (*MonthView, error) {
	grid, err := projection.BuildMonthGrid(year, month)
	if err != nil {
		return nil, err
	}
	snap, err := clientSnapshot(ctx, cs.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	today := cs.now()
	view := &MonthView{
		Year:  year,
		Month: month,
		Cells: make([]DayMarker, 0, len(grid)),
	}
	for _, cell := range grid {
		day := projection.WeekdayOf(cell.Date)
		view.Cells = append(view.Cells, DayMarker{
			Date:       cell.Date,
			InMonth:    cell.InMonth,
			IsToday:    projection.SameDate(cell.Date, today),
			HasWorkout: projection.HasWorkout(cell.Date, snap.Workouts),
			HasMeals:   projection.HasMeals(day, snap.Meals),
			Sessions:   len(sessionsOn(day, snap.Schedule)),
		})
	}
	return view, nil
}

func (cs *CalendarService) ExportICS(ctx context.Context, sess entity.Session, clientID uuid.UUID, year int, month time.Month) ([]byte, error) {
	grid, err := projection.BuildMonthGrid(year, month)
	if err != nil {
		return nil, err
	}
	snap, err := clientSnapshot(ctx, cs.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	cal := buildCalendar(grid, snap, cs.now())
	var buf bytes.Buffer
	if err = ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, errors.New("encoding calendar error: " + err.Error())
	}
	return buf.Bytes(), nil
}

// buildCalendar emits an all-day event for every in-month workout day and a
// timed event for every training session. Session times are read in the
// location of now.
func buildCalendar(grid []projection.CalendarCell, snap *snapshot.Snapshot, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)
	loc := now.Location()
	for _, cell := range grid {
		if !cell.InMonth {
			continue
		}
		date := cell.Date.Format(projection.DateLayout)
		if dw := projection.WorkoutForDate(cell.Date, snap.Workouts); !dw.Rest {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, fmt.Sprintf("workout-%s-%s@coachplan", dw.Routine.ID, date))
			event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
			event.Props.SetDate(ical.PropDateTimeStart, cell.Date)
			event.Props.SetDate(ical.PropDateTimeEnd, cell.Date.AddDate(0, 0, 1))
			event.Props.SetText(ical.PropSummary, "Workout: "+dw.Routine.Name)
			if desc := describeExercises(dw.Routine.Exercises); desc != "" {
				event.Props.SetText(ical.PropDescription, desc)
			}
			cal.Children = append(cal.Children, event.Component)
		}
		for _, s := range sessionsOn(projection.WeekdayOf(cell.Date), snap.Schedule) {
			start, errStart := atClock(cell.Date, s.StartTime, loc)
			end, errEnd := atClock(cell.Date, s.EndTime, loc)
			if errStart != nil || errEnd != nil {
				continue
			}
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, fmt.Sprintf("session-%s-%s@coachplan", s.ID, date))
			event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
			event.Props.SetDateTime(ical.PropDateTimeStart, start)
			event.Props.SetDateTime(ical.PropDateTimeEnd, end)
			event.Props.SetText(ical.PropSummary, "Training with "+s.Trainer)
			if s.Notes != "" {
				event.Props.SetText(ical.PropDescription, s.Notes)
			}
			cal.Children = append(cal.Children, event.Component)
		}
	}
	return cal
}

func sessionsOn(day projection.Weekday, schedule []entity.TrainingSession) []entity.TrainingSession {
	var sessions []entity.TrainingSession
	for _, s := range schedule {
		if s.DaySlot == day.RoutineSlot() {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

func atClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

func describeExercises(exercises []entity.Exercise) string {
	lines := make([]string, 0, len(exercises))
	for _, e := range exercises {
		line := e.Name
		if e.Sets > 0 || e.Reps != "" {
			line += fmt.Sprintf(" %dx%s", e.Sets, e.Reps)
		}
		if e.Rest != "" {
			line += ", rest " + e.Rest
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
