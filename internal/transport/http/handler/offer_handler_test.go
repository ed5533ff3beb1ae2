package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"go-order-board/internal/seed"
)

func TestOfferLifecycle(t *testing.T) {
	e, _ := newTestServer(t)

	w := do(t, e, http.MethodPost, "/offers", `{"id":1,"order_id":5,"executor_id":3}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "Offer created" {
		t.Errorf("create body: got %q", w.Body.String())
	}

	w = do(t, e, http.MethodPut, "/offer/1", `{"order_id":6,"executor_id":4}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d", w.Code)
	}

	w = do(t, e, http.MethodGet, "/offer/1", "")
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["order_id"] != float64(6) {
		t.Errorf("expected order_id 6, got %v", got["order_id"])
	}

	if w = do(t, e, http.MethodDelete, "/offer/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	if w = do(t, e, http.MethodGet, "/offer/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", w.Code)
	}
}

// 种子灌入后各集合返回完整条数（列表不截断）
func TestListReturnsSeededCounts(t *testing.T) {
	e, st := newTestServer(t)

	if err := seed.Load(context.Background(), st, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cases := []struct {
		path string
		want int
	}{
		{"/users", len(seed.Users)},
		{"/orders", len(seed.Orders)},
		{"/offers", len(seed.Offers)},
	}
	for _, tc := range cases {
		w := do(t, e, http.MethodGet, tc.path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", tc.path, w.Code)
		}
		var docs []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &docs); err != nil {
			t.Fatalf("decode %s: %v", tc.path, err)
		}
		if len(docs) != tc.want {
			t.Errorf("GET %s: expected %d records, got %d", tc.path, tc.want, len(docs))
		}
	}
}
