package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	m := New()
	m.Observe("ping", OutcomeOK, time.Now())
	m.Observe("ping", OutcomeOK, time.Now())
	m.Observe("unknown", OutcomeUnauthorized, time.Now())

	if got := testutil.ToFloat64(m.Interactions.WithLabelValues("ping", OutcomeOK)); got != 2 {
		t.Errorf("interactions{ping,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Interactions.WithLabelValues("unknown", OutcomeUnauthorized)); got != 1 {
		t.Errorf("interactions{unknown,unauthorized} = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.Duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe("application_command", OutcomeHandlerError, time.Now())

	w := httptest.NewRecorder()
	r := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/metrics", http.NoBody)
	m.Handler().ServeHTTP(w, r)

	body, _ := io.ReadAll(w.Result().Body)
	want := `interactor_interactions_total{kind="application_command",outcome="handler_error"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics body doesn't contain %q:\n%s", want, body)
	}
}
