package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/startpage-backend/internal/observability"
	"github.com/yungbote/startpage-backend/internal/platform/ctxutil"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()))

	var seen *ctxutil.RequestData
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetRequestData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.RequestID != "req-123" || seen.TraceID == "" {
		t.Fatalf("request data not attached: %+v", seen)
	}
	if rec.Header().Get("X-Request-Id") != "req-123" || rec.Header().Get("X-Trace-Id") != seen.TraceID {
		t.Fatalf("ids not echoed: %v", rec.Header())
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.New()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/flashcards/sessions/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/flashcards/sessions/a", "/api/flashcards/sessions/b", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var buf strings.Builder
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `startpage_api_requests_total{method="GET",route="/api/flashcards/sessions/:id",status="204"} 2`) {
		t.Fatalf("templated route not counted:\n%s", out)
	}
	if !strings.Contains(out, `route="unmatched",status="404"`) {
		t.Fatalf("unmatched route not counted:\n%s", out)
	}
	if !strings.Contains(out, "startpage_api_inflight_requests 0") {
		t.Fatalf("inflight gauge not released:\n%s", out)
	}
}
