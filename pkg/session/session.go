// Package session enforces the mutual-exclusion rule between sleep and
// feeding timers: at most one of the two is active, and starting one
// force-stops the other server-side. The reconciler applies each result to the
// shared state cells and produces the single user-facing notice.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/state"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// API is the slice of the backend client the reconciler needs.
type API interface {
	GetChild(ctx context.Context) (*model.Child, error)
	CreateSleep(ctx context.Context, req client.SleepRequest) (*client.CreateSleepResult, error)
	UpdateSleep(ctx context.Context, id string, req client.SleepRequest) (*model.SleepLog, error)
	DeleteSleep(ctx context.Context, id string) error
	CreateFeeding(ctx context.Context, req client.FeedingRequest) (*client.CreateFeedingResult, error)
	UpdateFeeding(ctx context.Context, id string, req client.FeedingRequest) (*model.FeedingLog, error)
	DeleteFeeding(ctx context.Context, id string) error
	GetActiveSleep(ctx context.Context) (*model.SleepLog, error)
	GetActiveFeeding(ctx context.Context) (*model.FeedingLog, error)
}

var (
	ErrNoActiveSleep   = errors.New("no sleep session in progress")
	ErrNoActiveFeeding = errors.New("no feed in progress")
	ErrNegativeBottle  = errors.New("bottle quantity must not be negative")
)

// Reconciler mutates server state through the API and mirrors the result into
// the state store.
type Reconciler struct {
	API   API
	State *state.Store
}

// StartSleep begins a sleep timer. When a feed was active the server stops it
// as part of the same call; the returned notice then combines both outcomes.
// An empty startTime defers to the server's now.
func (r *Reconciler) StartSleep(ctx context.Context, startTime string) (string, error) {
	res, err := r.API.CreateSleep(ctx, client.SleepRequest{StartTime: startTime})
	if err != nil {
		return "", err
	}
	log := res.SleepLog
	r.State.ActiveSleep.Set(&log)
	r.State.ActiveFeeding.Set(nil)
	if sf := res.StoppedFeeding; sf != nil {
		return fmt.Sprintf("%s feed stopped (%dm) — sleep started", sf.FeedType.Side(), sf.DurationMinutes), nil
	}
	return "Sleep started", nil
}

// StopSleep completes the active sleep. On failure the active cell is left
// untouched so the timer survives and the stop can be retried.
func (r *Reconciler) StopSleep(ctx context.Context) (string, error) {
	active := r.State.ActiveSleep.Get()
	if active == nil {
		return "", ErrNoActiveSleep
	}
	updated, err := r.API.UpdateSleep(ctx, active.ID, client.SleepRequest{EndTime: timeutil.NowISO()})
	if err != nil {
		return "", err
	}
	r.State.ActiveSleep.Set(nil)
	if updated.DurationMinutes != nil {
		return fmt.Sprintf("Sleep logged: %dm", *updated.DurationMinutes), nil
	}
	return "Sleep logged", nil
}

// CancelSleep deletes the active sleep without completing it. No duration is
// reported.
func (r *Reconciler) CancelSleep(ctx context.Context) error {
	active := r.State.ActiveSleep.Get()
	if active == nil {
		return ErrNoActiveSleep
	}
	if err := r.API.DeleteSleep(ctx, active.ID); err != nil {
		return err
	}
	r.State.ActiveSleep.Set(nil)
	return nil
}

// StartBreastFeed begins a breast-feed timer on the given side, force-stopping
// an active sleep server-side.
func (r *Reconciler) StartBreastFeed(ctx context.Context, side model.FeedType) (string, error) {
	if !side.Breast() {
		return "", fmt.Errorf("feed type %q is not a breast side", side)
	}
	res, err := r.API.CreateFeeding(ctx, client.FeedingRequest{
		FeedType:  side,
		StartTime: timeutil.NowISO(),
	})
	if err != nil {
		return "", err
	}
	log := res.FeedingLog
	r.State.ActiveFeeding.Set(&log)
	r.State.ActiveSleep.Set(nil)
	if ss := res.StoppedSleep; ss != nil {
		return fmt.Sprintf("Sleep stopped (%dm) — %s feed started", ss.DurationMinutes, side.Side()), nil
	}
	return fmt.Sprintf("%s feed started", side.Side()), nil
}

// LogBottle records a completed bottle feed. Bottle feeds have no active
// phase, but creating one still force-stops an active sleep; the combined
// outcome is reported as one notice. The quantity becomes the prefill for the
// next bottle entry.
func (r *Reconciler) LogBottle(ctx context.Context, ml int) (string, error) {
	if ml < 0 {
		return "", ErrNegativeBottle
	}
	res, err := r.API.CreateFeeding(ctx, client.FeedingRequest{
		FeedType:   model.Bottle,
		StartTime:  timeutil.NowISO(),
		QuantityML: &ml,
	})
	if err != nil {
		return "", err
	}
	r.State.LastBottleML.Set(ml)
	if ss := res.StoppedSleep; ss != nil {
		r.State.ActiveSleep.Set(nil)
		return fmt.Sprintf("Sleep stopped (%dm) — bottle logged: %dml", ss.DurationMinutes, ml), nil
	}
	return fmt.Sprintf("Bottle logged: %dml", ml), nil
}

// StopFeeding completes the active breast feed. On failure the active cell is
// left untouched.
func (r *Reconciler) StopFeeding(ctx context.Context) (string, error) {
	active := r.State.ActiveFeeding.Get()
	if active == nil {
		return "", ErrNoActiveFeeding
	}
	updated, err := r.API.UpdateFeeding(ctx, active.ID, client.FeedingRequest{EndTime: timeutil.NowISO()})
	if err != nil {
		return "", err
	}
	r.State.ActiveFeeding.Set(nil)
	if updated.DurationMinutes != nil {
		return fmt.Sprintf("Feed logged: %dm", *updated.DurationMinutes), nil
	}
	return "Feed logged", nil
}

// CancelFeeding deletes the active feed without completing it.
func (r *Reconciler) CancelFeeding(ctx context.Context) error {
	active := r.State.ActiveFeeding.Get()
	if active == nil {
		return ErrNoActiveFeeding
	}
	if err := r.API.DeleteFeeding(ctx, active.ID); err != nil {
		return err
	}
	r.State.ActiveFeeding.Set(nil)
	return nil
}

// LoadChild pulls the child profile into the state cell. A missing profile is
// not an error; the cell is set to nil.
func (r *Reconciler) LoadChild(ctx context.Context) (*model.Child, error) {
	child, err := r.API.GetChild(ctx)
	if err != nil {
		return nil, err
	}
	r.State.Child.Set(child)
	return child, nil
}

// Refresh pulls the active sessions from the backend into the state cells.
func (r *Reconciler) Refresh(ctx context.Context) error {
	sleep, err := r.API.GetActiveSleep(ctx)
	if err != nil {
		return err
	}
	feeding, err := r.API.GetActiveFeeding(ctx)
	if err != nil {
		return err
	}
	r.State.ActiveSleep.Set(sleep)
	r.State.ActiveFeeding.Set(feeding)
	return nil
}
