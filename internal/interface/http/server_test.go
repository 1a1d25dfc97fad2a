package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketpulse/internal/application/syncstore"
	"marketpulse/internal/infrastructure/config"
	"marketpulse/internal/infrastructure/synthetic"
)

func newTestServer(t *testing.T, refreshed bool) (*Server, *syncstore.Store) {
	t.Helper()
	store := syncstore.NewStore(synthetic.NewSource())
	t.Cleanup(store.Close)
	if refreshed {
		if err := store.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh: %v", err)
		}
	}
	cfg := config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	return NewServer(cfg, store), store
}

func doRequest(t *testing.T, s *Server, method, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	s.Handler().ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestPing(t *testing.T) {
	s, _ := newTestServer(t, false)
	w, body := doRequest(t, s, http.MethodGet, "/api/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["message"] != "pong" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSnapshotEndpointsBeforeFirstSync(t *testing.T) {
	s, _ := newTestServer(t, false)

	for _, target := range []string{
		"/api/dashboard",
		"/api/assets",
		"/api/news",
		"/api/alerts",
		"/api/portfolio",
		"/api/portfolio/history",
		"/api/portfolio/allocation",
	} {
		w, body := doRequest(t, s, http.MethodGet, target)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503 before first sync, got %d", target, w.Code)
		}
		if body["error_code"] != "SNAPSHOT_NOT_READY" {
			t.Errorf("%s: unexpected error code %v", target, body["error_code"])
		}
		if body["loading"] != true {
			t.Errorf("%s: expected loading flag, got %v", target, body["loading"])
		}
	}
}

func TestHealthAndStatus(t *testing.T) {
	s, store := newTestServer(t, false)

	_, body := doRequest(t, s, http.MethodGet, "/api/health")
	if body["health"] != "warming_up" {
		t.Fatalf("expected warming_up before first sync, got %v", body["health"])
	}
	_, body = doRequest(t, s, http.MethodGet, "/api/status")
	if body["loading"] != true {
		t.Fatalf("expected loading true, got %v", body)
	}

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	_, body = doRequest(t, s, http.MethodGet, "/api/health")
	if body["health"] != "ok" {
		t.Fatalf("expected ok after sync, got %v", body["health"])
	}
	_, body = doRequest(t, s, http.MethodGet, "/api/status")
	if body["loading"] != false {
		t.Fatalf("expected loading false, got %v", body)
	}
	if _, ok := body["lastUpdated"]; !ok {
		t.Fatalf("expected lastUpdated after sync, got %v", body)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	s, _ := newTestServer(t, false)

	w, body := doRequest(t, s, http.MethodPost, "/api/refresh")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", w.Code, body)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}

	w, _ = doRequest(t, s, http.MethodGet, "/api/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected dashboard ready after refresh, got %d", w.Code)
	}
}

func TestRefreshEndpointClosedStore(t *testing.T) {
	s, store := newTestServer(t, false)
	store.Close()

	w, body := doRequest(t, s, http.MethodPost, "/api/refresh")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if body["error_code"] != "STORE_CLOSED" {
		t.Fatalf("unexpected error code %v", body["error_code"])
	}
}

func TestAssetsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, true)

	w, body := doRequest(t, s, http.MethodGet, "/api/assets?class=crypto&sort=changePercent&dir=desc")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", w.Code, body)
	}
	items, ok := body["items"].([]interface{})
	if !ok || len(items) == 0 {
		t.Fatalf("expected items, got %v", body["items"])
	}
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if item["class"] != "crypto" {
			t.Fatalf("expected only crypto assets, got %v", item["class"])
		}
	}
	counts, ok := body["counts"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected counts, got %v", body["counts"])
	}
	// 計數取自未過濾全集，stock 的數量不因 class=crypto 而歸零。
	if counts["stocks"].(float64) == 0 {
		t.Fatalf("expected unfiltered stock count, got %v", counts)
	}
}

func TestAssetsEndpointSearch(t *testing.T) {
	s, _ := newTestServer(t, true)

	_, body := doRequest(t, s, http.MethodGet, "/api/assets?q=btc")
	items := body["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected exactly one match for btc, got %d", len(items))
	}
	if items[0].(map[string]interface{})["symbol"] != "BTC" {
		t.Fatalf("unexpected match: %v", items[0])
	}
}

func TestAssetsEndpointBadParams(t *testing.T) {
	s, _ := newTestServer(t, true)

	for _, target := range []string{
		"/api/assets?class=bonds",
		"/api/assets?dir=sideways",
	} {
		w, body := doRequest(t, s, http.MethodGet, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		if body["error_code"] != "BAD_REQUEST" {
			t.Errorf("%s: unexpected error code %v", target, body["error_code"])
		}
	}
}

func TestNewsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, true)

	_, body := doRequest(t, s, http.MethodGet, "/api/news?category=crypto")
	items := body["items"].([]interface{})
	if len(items) == 0 {
		t.Fatalf("expected crypto articles, got none")
	}
	for _, raw := range items {
		if raw.(map[string]interface{})["category"] != "crypto" {
			t.Fatalf("expected only crypto articles, got %v", raw)
		}
	}
	categories, ok := body["categories"].([]interface{})
	if !ok || len(categories) == 0 {
		t.Fatalf("expected categories from unfiltered collection, got %v", body["categories"])
	}
}

func TestAlertsEndpointViews(t *testing.T) {
	s, _ := newTestServer(t, true)

	_, body := doRequest(t, s, http.MethodGet, "/api/alerts?view=list")
	items := body["items"].([]interface{})
	if len(items) == 0 {
		t.Fatalf("expected alert items")
	}

	_, body = doRequest(t, s, http.MethodGet, "/api/alerts?view=grouped")
	groups, ok := body["groups"].([]interface{})
	if !ok || len(groups) == 0 {
		t.Fatalf("expected grouped alerts, got %v", body["groups"])
	}
	var total int
	for _, raw := range groups {
		g := raw.(map[string]interface{})
		alerts := g["alerts"].([]interface{})
		if len(alerts) == 0 {
			t.Fatalf("empty severity group should be omitted: %v", g["severity"])
		}
		total += len(alerts)
	}
	if float64(total) != body["total"].(float64) {
		t.Fatalf("group total %d does not match reported total %v", total, body["total"])
	}

	w, _ := doRequest(t, s, http.MethodGet, "/api/alerts?view=pie")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown view, got %d", w.Code)
	}
}

func TestPortfolioEndpoints(t *testing.T) {
	s, _ := newTestServer(t, true)

	w, body := doRequest(t, s, http.MethodGet, "/api/portfolio")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, ok := body["portfolio"]; !ok {
		t.Fatalf("expected portfolio payload, got %v", body)
	}

	_, body = doRequest(t, s, http.MethodGet, "/api/portfolio/history")
	points, ok := body["points"].([]interface{})
	if !ok || len(points) == 0 {
		t.Fatalf("expected value history points, got %v", body)
	}

	_, body = doRequest(t, s, http.MethodGet, "/api/portfolio/allocation")
	allocations, ok := body["items"].([]interface{})
	if !ok || len(allocations) == 0 {
		t.Fatalf("expected allocations, got %v", body)
	}
	var sum float64
	for _, raw := range allocations {
		sum += raw.(map[string]interface{})["percentage"].(float64)
	}
	if sum < 99 || sum > 101 {
		t.Fatalf("expected percentages near 100, got %v", sum)
	}
}
