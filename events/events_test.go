package events

import (
	"encoding/json"
	"testing"
	"time"

	"salesdesk/models"
)

func TestNewBillCreated(t *testing.T) {
	b := models.Bill{
		ID:          42,
		CustomerID:  1,
		ProductID:   2,
		EmployeeID:  3,
		Quantity:    4,
		TotalAmount: 180,
		Method:      models.MethodUPI,
		Date:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	ev := NewBillCreated(b)
	if ev.EventID == "" {
		t.Error("event id is empty")
	}
	if ev.BillID != 42 || ev.ProductID != 2 || ev.EmployeeID != 3 || ev.Quantity != 4 {
		t.Errorf("event fields = %+v, want bill fields carried over", ev)
	}
	if ev2 := NewBillCreated(b); ev2.EventID == ev.EventID {
		t.Error("event ids are not unique per event")
	}
}

func TestBillCreatedMarshal(t *testing.T) {
	ev := NewBillCreated(models.Bill{ID: 7, TotalAmount: 99.5, Method: models.MethodCash})

	payload, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"event_id", "bill_id", "total_amount", "method", "date"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("payload missing %q key: %s", key, payload)
		}
	}
}
