package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/resilience"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/usecase"
)

const upcomingPayload = `{
  "matches": [
    {
      "id": 501,
      "utcDate": "2026-02-23T17:00:00Z",
      "status": "TIMED",
      "venue": "RAMS Park",
      "competition": {"code": "TSL", "name": "Süper Lig", "emblem": "https://example.org/tsl.png"},
      "homeTeam": {"id": 1, "name": "Galatasaray", "crest": "https://example.org/gs.png"},
      "awayTeam": {"id": 2, "name": "Fenerbahçe", "crest": "https://example.org/fb.png"},
      "score": {"fullTime": {"home": null, "away": null}}
    }
  ]
}`

const resultsPayload = `{
  "matches": [
    {
      "id": 400,
      "utcDate": "2026-02-18T19:00:00Z",
      "status": "FINISHED",
      "competition": {"code": "CL", "name": "UEFA Champions League"},
      "homeTeam": {"id": 3, "name": "Beşiktaş"},
      "awayTeam": {"id": 4, "name": "Real Madrid"},
      "score": {"fullTime": {"home": 0, "away": 2}}
    },
    {
      "id": 401,
      "utcDate": "2026-02-21T16:00:00Z",
      "status": "FINISHED",
      "competition": {"code": "TSL", "name": "Süper Lig"},
      "homeTeam": {"id": 5, "name": "Trabzonspor"},
      "awayTeam": {"id": 1, "name": "Galatasaray"},
      "score": {}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:    server.URL,
		Token:      "test-token",
		MaxRetries: 0,
	})
}

func TestClient_ListUpcoming(t *testing.T) {
	var gotQuery atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Auth-Token"); got != "test-token" {
			t.Errorf("missing auth token header, got %q", got)
		}
		gotQuery.Store(r.URL.Query().Encode())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upcomingPayload))
	})

	fixtures, err := client.ListUpcoming(context.Background(), match.Query{
		Competitions: []string{"TSL", "CL"},
		DateFrom:     "2026-02-22",
		DateTo:       "2026-03-08",
	})
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}

	if len(fixtures) != 1 {
		t.Fatalf("unexpected fixture count: %d", len(fixtures))
	}
	got := fixtures[0]
	if got.ID != "501" || got.CompetitionCode != "TSL" {
		t.Fatalf("unexpected fixture: %+v", got)
	}
	if got.HomeTeam.Name != "Galatasaray" || got.HomeTeam.Logo == "" {
		t.Fatalf("unexpected home team: %+v", got.HomeTeam)
	}
	if got.Score != nil {
		t.Fatalf("scheduled fixture must have no score")
	}
	if got.KickoffAt.IsZero() {
		t.Fatalf("kickoff must be parsed")
	}

	query, _ := gotQuery.Load().(string)
	for _, part := range []string{"competitions=TSL%2CCL", "dateFrom=2026-02-22", "dateTo=2026-03-08"} {
		if !strings.Contains(query, part) {
			t.Fatalf("query %q missing %q", query, part)
		}
	}
}

func TestClient_ListUpcomingValidation(t *testing.T) {
	client := NewClient(ClientConfig{})

	_, err := client.ListUpcoming(context.Background(), match.Query{})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_ListResultsNewestFirst(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resultsPayload))
	})

	fixtures, err := client.ListResults(context.Background(), match.ResultQuery{
		Competitions: []string{"TSL", "CL"},
		Limit:        10,
	})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}

	if len(fixtures) != 2 {
		t.Fatalf("unexpected result count: %d", len(fixtures))
	}
	if fixtures[0].ID != "401" || fixtures[1].ID != "400" {
		t.Fatalf("results must be newest first: %+v", fixtures)
	}
	if fixtures[0].Score != nil {
		t.Fatalf("missing full time score must map to nil")
	}
	if fixtures[1].Score == nil || fixtures[1].Score.Away != 2 {
		t.Fatalf("unexpected score: %+v", fixtures[1].Score)
	}
}

func TestClient_PermanentStatusIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})
	client.maxRetries = 3

	_, err := client.ListUpcoming(context.Background(), match.Query{
		Competitions: []string{"TSL"},
		DateFrom:     "2026-02-22",
		DateTo:       "2026-02-23",
	})
	if err == nil {
		t.Fatalf("expected error for 400 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("permanent failure retried %d times", got)
	}
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	client.circuitEnabled = true
	client.breaker = resilience.NewCircuitBreaker(2, resilience.DefaultCircuitBreakerConfig().OpenTimeout, 1)

	q := match.Query{Competitions: []string{"TSL"}, DateFrom: "2026-02-22", DateTo: "2026-02-23"}
	for i := 0; i < 2; i++ {
		if _, err := client.ListUpcoming(context.Background(), q); err == nil {
			t.Fatalf("expected transient failure")
		}
	}

	_, err := client.ListUpcoming(context.Background(), q)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once the circuit opened, got %v", err)
	}
}
