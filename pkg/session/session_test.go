package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/state"
)

type fakeAPI struct {
	child         *model.Child
	activeSleep   *model.SleepLog
	activeFeeding *model.FeedingLog

	failUpdateSleep   error
	failUpdateFeeding error

	nextSleepID   int
	nextFeedingID int
}

func (f *fakeAPI) GetChild(ctx context.Context) (*model.Child, error) {
	return f.child, nil
}

func (f *fakeAPI) CreateSleep(ctx context.Context, req client.SleepRequest) (*client.CreateSleepResult, error) {
	f.nextSleepID++
	res := &client.CreateSleepResult{
		SleepLog: model.SleepLog{ID: "sl" + string(rune('0'+f.nextSleepID)), StartTime: req.StartTime},
	}
	if f.activeFeeding != nil {
		res.StoppedFeeding = &model.StoppedFeeding{
			ID:              f.activeFeeding.ID,
			FeedType:        f.activeFeeding.FeedType,
			DurationMinutes: 12,
		}
		f.activeFeeding = nil
	}
	f.activeSleep = &res.SleepLog
	return res, nil
}

func (f *fakeAPI) UpdateSleep(ctx context.Context, id string, req client.SleepRequest) (*model.SleepLog, error) {
	if f.failUpdateSleep != nil {
		return nil, f.failUpdateSleep
	}
	d := 30
	f.activeSleep = nil
	return &model.SleepLog{ID: id, EndTime: &req.EndTime, DurationMinutes: &d}, nil
}

func (f *fakeAPI) DeleteSleep(ctx context.Context, id string) error {
	f.activeSleep = nil
	return nil
}

func (f *fakeAPI) CreateFeeding(ctx context.Context, req client.FeedingRequest) (*client.CreateFeedingResult, error) {
	f.nextFeedingID++
	res := &client.CreateFeedingResult{
		FeedingLog: model.FeedingLog{
			ID:         "fd" + string(rune('0'+f.nextFeedingID)),
			FeedType:   req.FeedType,
			StartTime:  req.StartTime,
			QuantityML: req.QuantityML,
		},
	}
	if f.activeSleep != nil {
		res.StoppedSleep = &model.StoppedSleep{ID: f.activeSleep.ID, DurationMinutes: 45}
		f.activeSleep = nil
	}
	if req.FeedType.Breast() {
		f.activeFeeding = &res.FeedingLog
	}
	return res, nil
}

func (f *fakeAPI) UpdateFeeding(ctx context.Context, id string, req client.FeedingRequest) (*model.FeedingLog, error) {
	if f.failUpdateFeeding != nil {
		return nil, f.failUpdateFeeding
	}
	d := 15
	f.activeFeeding = nil
	return &model.FeedingLog{ID: id, FeedType: model.BreastLeft, EndTime: &req.EndTime, DurationMinutes: &d}, nil
}

func (f *fakeAPI) DeleteFeeding(ctx context.Context, id string) error {
	f.activeFeeding = nil
	return nil
}

func (f *fakeAPI) GetActiveSleep(ctx context.Context) (*model.SleepLog, error) {
	return f.activeSleep, nil
}

func (f *fakeAPI) GetActiveFeeding(ctx context.Context) (*model.FeedingLog, error) {
	return f.activeFeeding, nil
}

func newReconciler() (*Reconciler, *fakeAPI) {
	api := &fakeAPI{}
	return &Reconciler{API: api, State: state.NewStore()}, api
}

func atMostOneActive(t *testing.T, s *state.Store) {
	t.Helper()
	if s.ActiveSleep.Get() != nil && s.ActiveFeeding.Get() != nil {
		t.Fatalf("both sleep and feeding active at once")
	}
}

func TestStartSleepStopsActiveFeeding(t *testing.T) {
	r, api := newReconciler()
	ctx := context.Background()

	if _, err := r.StartBreastFeed(ctx, model.BreastLeft); err != nil {
		t.Fatalf("start feed: %v", err)
	}
	atMostOneActive(t, r.State)
	if r.State.ActiveFeeding.Get() == nil {
		t.Fatalf("expected active feeding")
	}

	notice, err := r.StartSleep(ctx, "")
	if err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	atMostOneActive(t, r.State)
	if r.State.ActiveSleep.Get() == nil {
		t.Fatalf("expected active sleep")
	}
	if r.State.ActiveFeeding.Get() != nil {
		t.Fatalf("starting sleep must clear the feeding cell")
	}
	if notice != "Left feed stopped (12m) — sleep started" {
		t.Fatalf("expected combined notice, got %q", notice)
	}
	_ = api
}

func TestStartFeedingStopsActiveSleep(t *testing.T) {
	r, _ := newReconciler()
	ctx := context.Background()

	if _, err := r.StartSleep(ctx, ""); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	notice, err := r.StartBreastFeed(ctx, model.BreastRight)
	if err != nil {
		t.Fatalf("start feed: %v", err)
	}
	atMostOneActive(t, r.State)
	if r.State.ActiveSleep.Get() != nil {
		t.Fatalf("starting a feed must clear the sleep cell")
	}
	if notice != "Sleep stopped (45m) — Right feed started" {
		t.Fatalf("expected combined notice, got %q", notice)
	}
}

func TestBottleWhileSleepingCombinedNotice(t *testing.T) {
	r, _ := newReconciler()
	ctx := context.Background()

	if _, err := r.StartSleep(ctx, ""); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	notice, err := r.LogBottle(ctx, 120)
	if err != nil {
		t.Fatalf("log bottle: %v", err)
	}
	if r.State.ActiveSleep.Get() != nil {
		t.Fatalf("bottle with stopped sleep must clear the sleep cell")
	}
	if r.State.ActiveFeeding.Get() != nil {
		t.Fatalf("bottle feeds never become active")
	}
	if notice != "Sleep stopped (45m) — bottle logged: 120ml" {
		t.Fatalf("expected one combined message, got %q", notice)
	}
	if got := r.State.LastBottleML.Get(); got != 120 {
		t.Fatalf("expected last bottle quantity 120, got %d", got)
	}
}

func TestBottleRejectsNegativeQuantity(t *testing.T) {
	r, _ := newReconciler()
	if _, err := r.LogBottle(context.Background(), -10); !errors.Is(err, ErrNegativeBottle) {
		t.Fatalf("expected ErrNegativeBottle, got %v", err)
	}
}

func TestStopSleepReportsDuration(t *testing.T) {
	r, _ := newReconciler()
	ctx := context.Background()
	if _, err := r.StartSleep(ctx, ""); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	notice, err := r.StopSleep(ctx)
	if err != nil {
		t.Fatalf("stop sleep: %v", err)
	}
	if r.State.ActiveSleep.Get() != nil {
		t.Fatalf("stop must clear the cell")
	}
	if notice != "Sleep logged: 30m" {
		t.Fatalf("unexpected notice: %q", notice)
	}
}

func TestStopFailureKeepsTimer(t *testing.T) {
	r, api := newReconciler()
	ctx := context.Background()
	if _, err := r.StartSleep(ctx, ""); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	api.failUpdateSleep = errors.New("backend down")
	if _, err := r.StopSleep(ctx); err == nil || !strings.Contains(err.Error(), "backend down") {
		t.Fatalf("expected stop failure, got %v", err)
	}
	if r.State.ActiveSleep.Get() == nil {
		t.Fatalf("failed stop must not clear the active cell")
	}
	// retry succeeds once the backend recovers
	api.failUpdateSleep = nil
	if _, err := r.StopSleep(ctx); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if r.State.ActiveSleep.Get() != nil {
		t.Fatalf("retry must clear the cell")
	}
}

func TestCancelSleepSilent(t *testing.T) {
	r, _ := newReconciler()
	ctx := context.Background()
	if _, err := r.StartSleep(ctx, ""); err != nil {
		t.Fatalf("start sleep: %v", err)
	}
	if err := r.CancelSleep(ctx); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if r.State.ActiveSleep.Get() != nil {
		t.Fatalf("cancel must clear the cell")
	}
}

func TestStopWithoutActiveSession(t *testing.T) {
	r, _ := newReconciler()
	if _, err := r.StopSleep(context.Background()); !errors.Is(err, ErrNoActiveSleep) {
		t.Fatalf("expected ErrNoActiveSleep, got %v", err)
	}
	if _, err := r.StopFeeding(context.Background()); !errors.Is(err, ErrNoActiveFeeding) {
		t.Fatalf("expected ErrNoActiveFeeding, got %v", err)
	}
}

func TestStartSequencesNeverBothActive(t *testing.T) {
	r, _ := newReconciler()
	ctx := context.Background()
	steps := []func() error{
		func() error { _, err := r.StartSleep(ctx, ""); return err },
		func() error { _, err := r.StartBreastFeed(ctx, model.BreastLeft); return err },
		func() error { _, err := r.StartSleep(ctx, ""); return err },
		func() error { _, err := r.StartBreastFeed(ctx, model.BreastRight); return err },
		func() error { _, err := r.LogBottle(ctx, 90); return err },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		atMostOneActive(t, r.State)
	}
}

func TestLoadChildPopulatesCell(t *testing.T) {
	r, api := newReconciler()
	api.child = &model.Child{ID: "ch1", Name: "Mai"}

	var notified *model.Child
	r.State.Child.Subscribe(func(c *model.Child) { notified = c })

	child, err := r.LoadChild(context.Background())
	if err != nil {
		t.Fatalf("load child: %v", err)
	}
	if child == nil || child.Name != "Mai" {
		t.Fatalf("unexpected child: %+v", child)
	}
	if got := r.State.Child.Get(); got == nil || got.ID != "ch1" {
		t.Fatalf("child cell not populated, got %+v", got)
	}
	if notified == nil || notified.ID != "ch1" {
		t.Fatalf("subscriber not notified, got %+v", notified)
	}
}

func TestLoadChildNoProfile(t *testing.T) {
	r, _ := newReconciler()
	child, err := r.LoadChild(context.Background())
	if err != nil {
		t.Fatalf("load child: %v", err)
	}
	if child != nil || r.State.Child.Get() != nil {
		t.Fatalf("expected nil profile")
	}
}

func TestRefreshLoadsActiveSessions(t *testing.T) {
	r, api := newReconciler()
	api.activeSleep = &model.SleepLog{ID: "sl9", StartTime: "2025-06-01T10:00:00+07:00"}
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := r.State.ActiveSleep.Get(); got == nil || got.ID != "sl9" {
		t.Fatalf("expected refreshed active sleep, got %+v", got)
	}
	if r.State.ActiveFeeding.Get() != nil {
		t.Fatalf("expected no active feeding")
	}
}
