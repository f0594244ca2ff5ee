package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/snapshot"
	"github.com/limbo/coachplan/pkg/entity"
)

var domainErrors = []error{
	errorvalues.ErrUserExists,
	errorvalues.ErrUserNotFound,
	errorvalues.ErrClientNotFound,
	errorvalues.ErrRoutineNotFound,
	errorvalues.ErrBonoNotFound,
	errorvalues.ErrBonoExhausted,
	errorvalues.ErrScheduleNotFound,
	errorvalues.ErrStaleLoad,
}

// repoError passes domain errors through and hides the rest behind a
// generic message.
func repoError(source string, err error) error {
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return errors.New(source + " repository error: " + err.Error())
}

// canRead lets admins see every client and clients only themselves.
func canRead(sess entity.Session, clientID uuid.UUID) error {
	if sess.IsAdmin() || sess.UserID == clientID {
		return nil
	}
	return errorvalues.ErrForbidden
}

func requireAdmin(sess entity.Session) error {
	if !sess.IsAdmin() {
		return errorvalues.ErrForbidden
	}
	return nil
}

func clientSnapshot(ctx context.Context, loader SnapshotLoaderI, sess entity.Session, clientID uuid.UUID) (*snapshot.Snapshot, error) {
	if err := canRead(sess, clientID); err != nil {
		return nil, err
	}
	snap, err := loader.Get(ctx, clientID)
	if err != nil {
		return nil, repoError("snapshot", err)
	}
	return snap, nil
}

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}
