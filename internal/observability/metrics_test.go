package observability

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsWritePrometheus(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/api/notes", 200, 30*time.Millisecond)
	m.ObserveAPI("GET", "/api/notes", 200, 2*time.Second)
	m.ObserveGeneration("heuristic", []string{"fill-in-blank", "true-false"}, nil, time.Millisecond)
	m.ObserveGeneration("ai", nil, errors.New("boom"), time.Second)
	m.IncAnswer("true-false", true)
	m.SetActiveSessions(3)

	if got := m.apiRequests.Value("GET", "/api/notes", "200"); got != 2 {
		t.Fatalf("api requests: got=%v want=2", got)
	}
	if got := m.apiLatency.Count("GET", "/api/notes"); got != 2 {
		t.Fatalf("latency count: got=%d want=2", got)
	}
	if got := m.generations.Value("ai", "error"); got != 1 {
		t.Fatalf("failed generations: got=%v want=1", got)
	}

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		"# TYPE startpage_api_requests_total counter",
		`startpage_api_requests_total{method="GET",route="/api/notes",status="200"} 2`,
		`startpage_api_request_duration_seconds_bucket{method="GET",route="/api/notes",le="0.05"} 1`,
		`startpage_api_request_duration_seconds_bucket{method="GET",route="/api/notes",le="+Inf"} 2`,
		`startpage_flashcards_issued_total{kind="true-false"} 1`,
		`startpage_flashcard_answers_total{kind="true-false",correct="true"} 1`,
		"startpage_flashcard_sessions_active 3",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in:\n%s", want, body)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", 200, time.Millisecond)
	m.IncNoteOp("edit", nil)
	m.IncStorageFailure("notes")
	m.ObserveLLMRequest("gpt", nil, time.Second)

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 503 {
		t.Fatalf("nil registry status: got=%d want=503", rec.Code)
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"route", "status"}, []string{`a"b\c`})
	if got != `{route="a\"b\\c",status="unknown"}` {
		t.Fatalf("labelString: got=%s", got)
	}
	if got := withLe("", "0.5"); got != `{le="0.5"}` {
		t.Fatalf("withLe empty: got=%s", got)
	}
}

func TestInitDisabled(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	if Init(nil) != nil {
		t.Fatalf("Init should return nil when disabled")
	}
}
