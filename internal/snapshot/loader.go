// Package snapshot caches the plan data of a client as one consistent unit.
// Readers of the same client share one in-flight load, and a write
// invalidating the client discards whatever load was running for it.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const loadTimeout = time.Second * 15

type Snapshot struct {
	ClientID uuid.UUID
	Seq      uint64
	Meals    []entity.MealPlanDay
	Workouts []entity.WorkoutRoutine
	Bonos    []entity.Bono
	Schedule []entity.TrainingSession
	LoadedAt time.Time
}

// clientState exists only while a client has a cached snapshot or a load in
// flight.
type clientState struct {
	seq     uint64
	cancel  context.CancelFunc
	current *Snapshot
}

type Loader struct {
	meals    repository.MealPlansRepositoryI
	routines repository.WorkoutRoutinesRepositoryI
	bonos    repository.BonosRepositoryI
	schedule repository.TrainingScheduleRepositoryI

	group   singleflight.Group
	mu      sync.Mutex
	seq     uint64
	clients map[uuid.UUID]*clientState
	now     func() time.Time
}

func NewLoader(meals repository.MealPlansRepositoryI, routines repository.WorkoutRoutinesRepositoryI,
	bonos repository.BonosRepositoryI, schedule repository.TrainingScheduleRepositoryI) *Loader {
	return &Loader{
		meals:    meals,
		routines: routines,
		bonos:    bonos,
		schedule: schedule,
		clients:  make(map[uuid.UUID]*clientState),
		now:      time.Now,
	}
}

// begin issues the sequence number of a new load. The load context is
// detached from the caller: other readers may be waiting on the same load.
func (l *Loader) begin(ctx context.Context, clientID uuid.UUID) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.clients[clientID]
	if !ok {
		st = &clientState{}
		l.clients[clientID] = st
	}
	l.seq++
	st.seq = l.seq
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
	st.cancel = cancel
	return loadCtx, st.seq
}

func (l *Loader) fetch(ctx context.Context, clientID uuid.UUID) (*Snapshot, error) {
	loadCtx, seq := l.begin(ctx, clientID)
	snap := &Snapshot{ClientID: clientID, Seq: seq}

	g, gctx := errgroup.WithContext(loadCtx)
	g.Go(func() (err error) {
		snap.Meals, err = l.meals.GetByClient(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		snap.Workouts, err = l.routines.GetByClient(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		snap.Bonos, err = l.bonos.GetByClient(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		snap.Schedule, err = l.schedule.GetByClient(gctx, clientID)
		return err
	})
	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.clients[clientID]
	if !ok || st.seq != seq {
		return nil, errorvalues.ErrStaleLoad
	}
	st.cancel()
	st.cancel = nil
	if err != nil {
		if st.current == nil {
			delete(l.clients, clientID)
		}
		return nil, fmt.Errorf("loading snapshot of client %s: %w", clientID, err)
	}
	snap.LoadedAt = l.now()
	st.current = snap
	return snap, nil
}

// Load fetches the client's meals, workouts, bonos and schedule concurrently
// and replaces the cached snapshot. Concurrent callers share one fetch; each
// stops waiting when its own ctx is done. It returns ErrStaleLoad when the
// client was invalidated while the fetch ran.
func (l *Loader) Load(ctx context.Context, clientID uuid.UUID) (*Snapshot, error) {
	ch := l.group.DoChan(clientID.String(), func() (any, error) {
		return l.fetch(ctx, clientID)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

// Current returns the last applied snapshot or nil.
func (l *Loader) Current(clientID uuid.UUID) *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	if st, ok := l.clients[clientID]; ok {
		return st.current
	}
	return nil
}

// Get returns the cached snapshot, loading it when absent. A load discarded
// by a write is retried once.
func (l *Loader) Get(ctx context.Context, clientID uuid.UUID) (*Snapshot, error) {
	if snap := l.Current(clientID); snap != nil {
		return snap, nil
	}
	snap, err := l.Load(ctx, clientID)
	if errors.Is(err, errorvalues.ErrStaleLoad) {
		if current := l.Current(clientID); current != nil {
			return current, nil
		}
		return l.Load(ctx, clientID)
	}
	return snap, err
}

// Invalidate drops the client's cached snapshot and cancels its in-flight
// load, whose result is then discarded. Called after writes.
func (l *Loader) Invalidate(clientID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.group.Forget(clientID.String())
	st, ok := l.clients[clientID]
	if !ok {
		return
	}
	if st.cancel != nil {
		st.cancel()
	}
	delete(l.clients, clientID)
}
