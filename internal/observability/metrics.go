package observability

import (
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/yungbote/startpage-backend/internal/platform/envutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

// Metrics is the process-wide registry served on /metrics in the
// Prometheus text format. Every method is a no-op on a nil receiver so
// callers can use Current() without checking Enabled().
type Metrics struct {
	apiRequests  *CounterVec
	apiLatency   *HistogramVec
	apiInflight  *Gauge
	noteOps      *CounterVec
	storageFails *CounterVec
	generations  *CounterVec
	genLatency   *HistogramVec
	cardsIssued  *CounterVec
	answers      *CounterVec
	sessions     *Gauge
	llmRequests  *CounterVec
	llmLatency   *HistogramVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Enabled reports METRICS_ENABLED.
func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

func Current() *Metrics {
	return instance
}

// Init installs the global registry when metrics are enabled and returns it.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = New()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

// New builds a standalone registry. Init is the usual entry point.
func New() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("startpage_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"startpage_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:  NewGauge("startpage_api_inflight_requests", "In-flight API requests."),
		noteOps:      NewCounterVec("startpage_note_operations_total", "Note editor operations by kind/status.", []string{"op", "status"}),
		storageFails: NewCounterVec("startpage_storage_failures_total", "Failed best-effort storage writes by target.", []string{"target"}),
		generations:  NewCounterVec("startpage_flashcard_generations_total", "Flash card generation runs by mode/status.", []string{"mode", "status"}),
		genLatency: NewHistogramVec(
			"startpage_flashcard_generation_duration_seconds",
			"Flash card generation latency in seconds by mode.",
			[]string{"mode"},
			[]float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		),
		cardsIssued: NewCounterVec("startpage_flashcards_issued_total", "Flash cards handed out by kind.", []string{"kind"}),
		answers:     NewCounterVec("startpage_flashcard_answers_total", "Scored flash card answers by kind/correct.", []string{"kind", "correct"}),
		sessions:    NewGauge("startpage_flashcard_sessions_active", "Open flash card sessions."),
		llmRequests: NewCounterVec("startpage_llm_requests_total", "Chat completion requests by model/status.", []string{"model", "status"}),
		llmLatency: NewHistogramVec(
			"startpage_llm_request_duration_seconds",
			"Chat completion latency in seconds by model.",
			[]string{"model"},
			[]float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		),
	}
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.noteOps, m.storageFails,
		m.generations, m.genLatency, m.cardsIssued, m.answers, m.sessions,
		m.llmRequests, m.llmLatency,
	}
	for _, wr := range writers {
		if err := wr.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	m.apiRequests.Inc(method, route, strconv.Itoa(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) APIInflight(delta float64) {
	if m == nil {
		return
	}
	m.apiInflight.Add(delta)
}

func (m *Metrics) IncNoteOp(op string, err error) {
	if m == nil {
		return
	}
	m.noteOps.Inc(op, statusOf(err))
}

func (m *Metrics) IncStorageFailure(target string) {
	if m == nil {
		return
	}
	m.storageFails.Inc(target)
}

// ObserveGeneration records one generation run and the kinds it produced.
func (m *Metrics) ObserveGeneration(mode string, kinds []string, err error, dur time.Duration) {
	if m == nil {
		return
	}
	m.generations.Inc(mode, statusOf(err))
	m.genLatency.Observe(dur.Seconds(), mode)
	for _, k := range kinds {
		m.cardsIssued.Inc(k)
	}
}

func (m *Metrics) IncAnswer(kind string, correct bool) {
	if m == nil {
		return
	}
	m.answers.Inc(kind, strconv.FormatBool(correct))
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}

func (m *Metrics) ObserveLLMRequest(model string, err error, dur time.Duration) {
	if m == nil {
		return
	}
	m.llmRequests.Inc(model, statusOf(err))
	m.llmLatency.Observe(dur.Seconds(), model)
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
