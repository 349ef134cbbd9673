package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grocermart/partnersync/internal/metrics"
	testhelpers "github.com/grocermart/partnersync/internal/test"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(&testhelpers.PartnerFacadeStub{}, logger, metrics.NewRegistry())
}

func TestRouterRoutes(t *testing.T) {
	engine := newTestRouter()

	cases := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/api/orders/PO-1/simulate", http.StatusCreated},
		{http.MethodGet, "/api/simulations/SIM-1", http.StatusOK},
		{http.MethodDelete, "/api/simulations/SIM-1", http.StatusNoContent},
		{http.MethodDelete, "/api/simulations", http.StatusNoContent},
		{http.MethodPost, "/api/partner/orders/PO-1/send", http.StatusOK},
		{http.MethodPost, "/api/partner/export/products", http.StatusOK},
		{http.MethodPost, "/api/partner/sync/stores/S1", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.target, tc.want, rec.Code)
		}
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	engine := newTestRouter()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header on responses")
	}
}

func TestRouterMetricsExposition(t *testing.T) {
	engine := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "partnersync_") {
		t.Fatal("expected partnersync metrics in exposition")
	}
}
