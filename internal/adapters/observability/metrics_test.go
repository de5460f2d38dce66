package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JianhaoLuo18/UniFrontend/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveExternal("flatly", "search_flats", 200, 12*time.Millisecond)
	observability.ObserveBotUpdate("message")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "flatly_external_requests_total") {
		t.Fatalf("expected flatly_external_requests_total in output")
	}
	if !strings.Contains(out, "flatly_bot_updates_total") {
		t.Fatalf("expected flatly_bot_updates_total in output")
	}
}
