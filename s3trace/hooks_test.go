package s3trace

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestZerologHookLogsRequestAndResponse(t *testing.T) {
	var buf bytes.Buffer
	hook := NewZerologHook(zerolog.New(&buf))

	req, _ := http.NewRequest(http.MethodGet, "http://example.invalid/bucket", nil)
	hook.Request(req)
	hook.Response(req, &http.Response{StatusCode: 200}, 5*time.Millisecond, nil)

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("s3go: request")) {
		t.Fatalf("expected request log line, got %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("s3go: response")) {
		t.Fatalf("expected response log line, got %q", out)
	}
}

func TestZerologHookLogsFailureAtWarn(t *testing.T) {
	var buf bytes.Buffer
	hook := NewZerologHook(zerolog.New(&buf).Level(zerolog.WarnLevel))

	req, _ := http.NewRequest(http.MethodGet, "http://example.invalid/bucket", nil)
	hook.Response(req, nil, time.Millisecond, deadlineErr{})

	if !bytes.Contains(buf.Bytes(), []byte("s3go: request failed")) {
		t.Fatalf("expected failure log line, got %q", buf.String())
	}
}

type deadlineErr struct{}

func (deadlineErr) Error() string { return "context deadline exceeded" }

func TestPrometheusHookRecordsRequestCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	hook := NewPrometheusHook(reg)

	req, _ := http.NewRequest(http.MethodGet, "http://example.invalid/bucket", nil)
	hook.Response(req, &http.Response{StatusCode: 200}, time.Millisecond, nil)

	got := testutil.ToFloat64(hook.requests.WithLabelValues("GET", "200"))
	if got != 1 {
		t.Fatalf("got %v requests, want 1", got)
	}
}
