package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestOrderCreateWithDanglingCustomer(t *testing.T) {
	e, _ := newTestServer(t)

	// customer_id=999 不存在，软外键下建单照样成功
	w := do(t, e, http.MethodPost, "/orders",
		`{"id":1,"name":"Fix faucet","description":"leaking","start_date":"2026-03-05","end_date":"2026-03-05","address":"Mira 101","price":1200,"customer_id":999,"executor_id":3}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "Order created" {
		t.Errorf("create body: got %q", w.Body.String())
	}

	w = do(t, e, http.MethodGet, "/order/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["customer_id"] != float64(999) {
		t.Errorf("expected customer_id 999, got %v", got["customer_id"])
	}
}

func TestOrderUpdateFullReplace(t *testing.T) {
	e, _ := newTestServer(t)

	w := do(t, e, http.MethodPost, "/orders",
		`{"id":2,"name":"Paint fence","description":"20m","start_date":"2026-04-12","end_date":"2026-04-15","address":"Dachnaya 3","price":4000,"customer_id":6,"executor_id":3}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}

	w = do(t, e, http.MethodPut, "/order/2",
		`{"name":"Paint fence and gate","description":"25m","start_date":"2026-04-12","end_date":"2026-04-16","address":"Dachnaya 3","price":5000,"customer_id":6,"executor_id":4}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	w = do(t, e, http.MethodGet, "/order/2", "")
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["price"] != float64(5000) || got["executor_id"] != float64(4) {
		t.Errorf("update not applied: %v", got)
	}
}

func TestOrderDeleteMissing(t *testing.T) {
	e, _ := newTestServer(t)
	if w := do(t, e, http.MethodDelete, "/order/77", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
