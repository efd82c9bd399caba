package models

type ProductRevenue struct {
	Product     string  `json:"product"`
	TotalAmount float64 `json:"total_amount"`
}

type EmployeeRevenue struct {
	SalesBy     string  `json:"sales_by"`
	TotalAmount float64 `json:"total_amount"`
}

type ProductSales struct {
	Product    string `json:"product"`
	TotalSales int    `json:"total_sales"`
}

type EmployeeSales struct {
	SalesBy    string `json:"sales_by"`
	TotalSales int    `json:"total_sales"`
}

type RevenueAnalytics struct {
	TopProducts []ProductRevenue `json:"top_5_revenue_generating_products"`
	TopEmployee *EmployeeRevenue `json:"top_revenue_generating_employee"`
}

type QuantityAnalytics struct {
	TopProducts []ProductSales `json:"top_5_sales_generating_products"`
	TopEmployee *EmployeeSales `json:"top_sales_generating_employee"`
}

// AnalyticsReport mirrors the shape served on /api/analytics. With no
// bill history the slices are empty and the top employees are null.
type AnalyticsReport struct {
	Revenue  RevenueAnalytics  `json:"revenue"`
	Quantity QuantityAnalytics `json:"quantity"`
}
