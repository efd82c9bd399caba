package events

import (
	"encoding/json"
	"strconv"
	"time"

	"salesdesk/models"

	"github.com/google/uuid"
)

const TopicBillCreated = "bill.created"

type BillCreated struct {
	EventID     string    `json:"event_id"`
	BillID      int       `json:"bill_id"`
	CustomerID  int       `json:"customer_id"`
	ProductID   int       `json:"product_id"`
	EmployeeID  int       `json:"employee_id"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	Method      string    `json:"method"`
	Date        time.Time `json:"date"`
}

func NewBillCreated(b models.Bill) BillCreated {
	return BillCreated{
		EventID:     uuid.NewString(),
		BillID:      b.ID,
		CustomerID:  b.CustomerID,
		ProductID:   b.ProductID,
		EmployeeID:  b.EmployeeID,
		Quantity:    b.Quantity,
		TotalAmount: b.TotalAmount,
		Method:      b.Method,
		Date:        b.Date,
	}
}

// Default is the process-wide producer; nil when KAFKA_BROKERS is not
// configured.
var Default *Producer

// EmitBillCreated publishes a bill.created event keyed by bill id.
// Fire-and-forget: a bill is never failed over its event.
func EmitBillCreated(b models.Bill) {
	if Default == nil {
		return
	}
	payload, err := json.Marshal(NewBillCreated(b))
	if err != nil {
		return
	}
	Default.Publish([]byte(strconv.Itoa(b.ID)), payload)
}
