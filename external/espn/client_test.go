package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hoopsight/hoopsight/internal/platform/logging"
	"github.com/hoopsight/hoopsight/internal/platform/resilience"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
}

func TestClient_TeamSeasonStatistics(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2026/types/0/teams/130/statistics" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("lang") != "en" || r.URL.Query().Get("region") != "us" {
			t.Errorf("missing lang/region query in %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"splits": {
				"categories": [
					{"name": "offensive", "displayName": "Offensive",
					 "stats": [{"name": "points", "displayValue": "78.2", "value": 78.2}]}
				]
			}
		}`))
	}))

	doc, err := client.TeamSeasonStatistics(context.Background(), "130", 2026)
	if err != nil {
		t.Fatalf("TeamSeasonStatistics: %v", err)
	}

	off, ok := doc.Category("offensive")
	if !ok {
		t.Fatal("offensive category missing")
	}
	points, ok := off.Stat("points")
	if !ok {
		t.Fatal("points stat missing")
	}
	if v, ok := points.Value(); !ok || v != 78.2 {
		t.Fatalf("points value = (%v, %v)", v, ok)
	}
}

func TestClient_TeamSeasonRecord(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2026/types/2/teams/130/record" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"name": "overall", "summary": "20-8"}]}`))
	}))

	doc, err := client.TeamSeasonRecord(context.Background(), "130", 2026)
	if err != nil {
		t.Fatalf("TeamSeasonRecord: %v", err)
	}

	overall, ok := doc.Item("overall")
	if !ok {
		t.Fatal("overall item missing")
	}
	if overall.Summary() != "20-8" {
		t.Fatalf("summary = %q, want 20-8", overall.Summary())
	}
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.TeamSeasonRecord(context.Background(), "99999", 2026)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestClient_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	}))

	if _, err := client.TeamSeasonStatistics(context.Background(), " ", 2026); err == nil {
		t.Fatal("expected error for empty team id")
	}
	if _, err := client.TeamSeasonStatistics(context.Background(), "130", 0); err == nil {
		t.Fatal("expected error for zero season")
	}
}
