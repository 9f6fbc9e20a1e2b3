package http

import (
	"context"
	"io"
	"net"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"

	httpH "github.com/yungbote/startpage-backend/internal/http/handlers"
	"github.com/yungbote/startpage-backend/internal/platform/logger"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestServerRunShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	gin.SetMode(gin.TestMode)

	srv := NewServer(RouterConfig{Log: logger.Nop(), HealthHandler: httpH.NewHealthHandler(nil)})
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, addr, time.Second) }()

	client := &stdhttp.Client{Transport: &stdhttp.Transport{DisableKeepAlives: true}, Timeout: time.Second}
	var body string
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get("http://" + addr + "/healthcheck")
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			body = string(b)
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	client.CloseIdleConnections()
	if body != "ok" {
		cancel()
		<-done
		t.Fatalf("server never answered healthcheck, body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServerRunReportsListenError(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	srv := NewServer(RouterConfig{Log: logger.Nop()})
	if err := srv.Run(context.Background(), l.Addr().String(), time.Second); err == nil {
		t.Fatalf("expected address in use error")
	}
}
