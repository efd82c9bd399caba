package controllers

import (
	"math"
	"testing"

	"salesdesk/models"
)

func bill(productID, employeeID, quantity int, total float64) models.Bill {
	return models.Bill{
		ProductID:   productID,
		EmployeeID:  employeeID,
		Quantity:    quantity,
		TotalAmount: total,
	}
}

func TestBuildAnalyticsReportEmptyHistory(t *testing.T) {
	report := BuildAnalyticsReport(nil, map[int]string{}, map[int]string{})

	if report.Revenue.TopProducts == nil || len(report.Revenue.TopProducts) != 0 {
		t.Errorf("revenue top products = %v, want empty slice", report.Revenue.TopProducts)
	}
	if report.Quantity.TopProducts == nil || len(report.Quantity.TopProducts) != 0 {
		t.Errorf("quantity top products = %v, want empty slice", report.Quantity.TopProducts)
	}
	if report.Revenue.TopEmployee != nil {
		t.Errorf("revenue top employee = %v, want nil", report.Revenue.TopEmployee)
	}
	if report.Quantity.TopEmployee != nil {
		t.Errorf("quantity top employee = %v, want nil", report.Quantity.TopEmployee)
	}
}

func TestBuildAnalyticsReportRanking(t *testing.T) {
	productNames := map[int]string{1: "P1", 2: "P2"}
	employeeNames := map[int]string{10: "Alice", 11: "Bob"}

	bills := []models.Bill{
		bill(1, 10, 1, 500),
		bill(2, 11, 4, 300),
	}

	report := BuildAnalyticsReport(bills, productNames, employeeNames)

	top := report.Revenue.TopProducts
	if len(top) != 2 || top[0].Product != "P1" || top[1].Product != "P2" {
		t.Fatalf("revenue ranking = %+v, want [P1 P2]", top)
	}
	if math.Abs(top[0].TotalAmount-500) > 1e-9 || math.Abs(top[1].TotalAmount-300) > 1e-9 {
		t.Errorf("revenue totals = %+v, want 500 and 300", top)
	}

	if report.Revenue.TopEmployee == nil || report.Revenue.TopEmployee.SalesBy != "Alice" {
		t.Errorf("revenue top employee = %+v, want Alice", report.Revenue.TopEmployee)
	}

	// Bob moved more units even though Alice earned more
	qtyTop := report.Quantity.TopProducts
	if len(qtyTop) != 2 || qtyTop[0].Product != "P2" || qtyTop[0].TotalSales != 4 {
		t.Fatalf("quantity ranking = %+v, want P2 first with 4", qtyTop)
	}
	if report.Quantity.TopEmployee == nil || report.Quantity.TopEmployee.SalesBy != "Bob" {
		t.Errorf("quantity top employee = %+v, want Bob", report.Quantity.TopEmployee)
	}
}

func TestBuildAnalyticsReportGroupsAcrossBills(t *testing.T) {
	productNames := map[int]string{1: "Soap", 2: "Shampoo"}
	employeeNames := map[int]string{5: "Eve"}

	bills := []models.Bill{
		bill(1, 5, 2, 100),
		bill(2, 5, 1, 250),
		bill(1, 5, 3, 200),
	}

	report := BuildAnalyticsReport(bills, productNames, employeeNames)

	top := report.Revenue.TopProducts
	if len(top) != 2 || top[0].Product != "Soap" {
		t.Fatalf("revenue ranking = %+v, want Soap first", top)
	}
	if math.Abs(top[0].TotalAmount-300) > 1e-9 {
		t.Errorf("Soap revenue = %v, want 300 (summed across bills)", top[0].TotalAmount)
	}

	if report.Quantity.TopEmployee == nil || report.Quantity.TopEmployee.TotalSales != 6 {
		t.Errorf("top employee quantity = %+v, want 6", report.Quantity.TopEmployee)
	}
	if report.Revenue.TopEmployee == nil || math.Abs(report.Revenue.TopEmployee.TotalAmount-550) > 1e-9 {
		t.Errorf("top employee revenue = %+v, want 550", report.Revenue.TopEmployee)
	}
}

func TestBuildAnalyticsReportTiesKeepFirstSeenOrder(t *testing.T) {
	productNames := map[int]string{7: "First", 8: "Second"}
	employeeNames := map[int]string{1: "A", 2: "B"}

	// identical totals: the product and employee seen first win the tie
	bills := []models.Bill{
		bill(7, 1, 2, 100),
		bill(8, 2, 2, 100),
	}

	report := BuildAnalyticsReport(bills, productNames, employeeNames)

	if report.Revenue.TopProducts[0].Product != "First" {
		t.Errorf("tie broken as %q, want First", report.Revenue.TopProducts[0].Product)
	}
	if report.Revenue.TopEmployee.SalesBy != "A" {
		t.Errorf("employee tie broken as %q, want A", report.Revenue.TopEmployee.SalesBy)
	}
	if report.Quantity.TopProducts[0].Product != "First" {
		t.Errorf("quantity tie broken as %q, want First", report.Quantity.TopProducts[0].Product)
	}
}

func TestBuildAnalyticsReportTopFiveCut(t *testing.T) {
	productNames := map[int]string{}
	employeeNames := map[int]string{1: "Only"}

	var bills []models.Bill
	for id := 1; id <= 7; id++ {
		productNames[id] = string(rune('A' + id - 1))
		bills = append(bills, bill(id, 1, 1, float64(id*10)))
	}

	report := BuildAnalyticsReport(bills, productNames, employeeNames)

	if len(report.Revenue.TopProducts) != 5 {
		t.Fatalf("revenue list length = %d, want 5", len(report.Revenue.TopProducts))
	}
	if report.Revenue.TopProducts[0].Product != "G" {
		t.Errorf("highest earner = %q, want G", report.Revenue.TopProducts[0].Product)
	}
	for i := 1; i < len(report.Revenue.TopProducts); i++ {
		if report.Revenue.TopProducts[i].TotalAmount > report.Revenue.TopProducts[i-1].TotalAmount {
			t.Fatalf("revenue list not descending: %+v", report.Revenue.TopProducts)
		}
	}
	if len(report.Quantity.TopProducts) != 5 {
		t.Errorf("quantity list length = %d, want 5", len(report.Quantity.TopProducts))
	}
}
