package domain

import (
	"encoding/json"
	"testing"
)

func TestUserDoc(t *testing.T) {
	u := User{ID: 1, FirstName: "A", LastName: "B", Age: 30, Email: "a@b.com", Role: "customer", Phone: "123"}
	doc := u.Doc()

	if doc["id"] != 1 || doc["first_name"] != "A" || doc["phone"] != "123" {
		t.Errorf("unexpected doc: %v", doc)
	}
	if len(doc) != 7 {
		t.Errorf("expected 7 keys, got %d", len(doc))
	}
}

func TestOrderDocRoundTrip(t *testing.T) {
	o := Order{ID: 2, Name: "n", Description: "d", StartDate: "2026-01-01", EndDate: "2026-01-02", Address: "a", Price: 100, CustomerID: 1, ExecutorID: 3}

	b, err := json.Marshal(o.Doc())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Order
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != o {
		t.Errorf("round trip differs: got %+v, want %+v", decoded, o)
	}
}

func TestOfferDoc(t *testing.T) {
	o := Offer{ID: 3, OrderID: 5, ExecutorID: 4}
	doc := o.Doc()
	if doc["order_id"] != 5 || doc["executor_id"] != 4 {
		t.Errorf("unexpected doc: %v", doc)
	}
}
