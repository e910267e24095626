package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/session"
	"github.com/minhquang4334/baby-tracker/pkg/state"
)

func bottleReconciler(t *testing.T, sent *map[string]any) *session.Reconciler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		*sent = body
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id":"fd1","child_id":"c1","feed_type":"bottle",
			"start_time":"2025-06-01T10:00:00+07:00","end_time":null,
			"duration_minutes":null,"created_at":"2025-06-01T10:00:00+07:00"
		}`))
	}))
	t.Cleanup(srv.Close)
	c := client.New(&client.Config{ServerURL: srv.URL, Timeout: 2 * time.Second})
	return &session.Reconciler{API: c, State: state.NewStore()}
}

func TestBottleExplicitZeroIsNotAFallback(t *testing.T) {
	var sent map[string]any
	r := bottleReconciler(t, &sent)

	zero := 0
	b := Bottle{ML: &zero, Reconciler: r}
	if err := b.Do(context.Background()); err != nil {
		t.Fatalf("bottle: %v", err)
	}
	if got, ok := sent["quantity_ml"].(float64); !ok || got != 0 {
		t.Fatalf("expected an explicit 0 to be sent, got %v", sent["quantity_ml"])
	}
}

func TestBottleOmittedUsesLastAmount(t *testing.T) {
	var sent map[string]any
	r := bottleReconciler(t, &sent)
	r.State.LastBottleML.Set(90)

	b := Bottle{Reconciler: r}
	if err := b.Do(context.Background()); err != nil {
		t.Fatalf("bottle: %v", err)
	}
	if got, ok := sent["quantity_ml"].(float64); !ok || got != 90 {
		t.Fatalf("expected the last used amount 90, got %v", sent["quantity_ml"])
	}
}
