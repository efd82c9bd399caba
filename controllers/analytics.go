package controllers

import (
	"encoding/json"
	"sort"

	"salesdesk/cache"
	"salesdesk/condb"
	"salesdesk/models"

	"github.com/gofiber/fiber/v2"
)

const topN = 5

// BuildAnalyticsReport reduces the bill history into the four ranked
// aggregates. Bills must arrive in id order: ties keep the order a
// group was first seen in.
func BuildAnalyticsReport(bills []models.Bill, productNames, employeeNames map[int]string) models.AnalyticsReport {
	report := models.AnalyticsReport{
		Revenue:  models.RevenueAnalytics{TopProducts: []models.ProductRevenue{}},
		Quantity: models.QuantityAnalytics{TopProducts: []models.ProductSales{}},
	}

	productRevenue := map[int]float64{}
	productQty := map[int]int{}
	employeeRevenue := map[int]float64{}
	employeeQty := map[int]int{}
	var productOrder, employeeOrder []int

	for _, b := range bills {
		if _, seen := productRevenue[b.ProductID]; !seen {
			productOrder = append(productOrder, b.ProductID)
		}
		if _, seen := employeeRevenue[b.EmployeeID]; !seen {
			employeeOrder = append(employeeOrder, b.EmployeeID)
		}
		productRevenue[b.ProductID] += b.TotalAmount
		productQty[b.ProductID] += b.Quantity
		employeeRevenue[b.EmployeeID] += b.TotalAmount
		employeeQty[b.EmployeeID] += b.Quantity
	}

	byProductRevenue := append([]int(nil), productOrder...)
	sort.SliceStable(byProductRevenue, func(i, j int) bool {
		return productRevenue[byProductRevenue[i]] > productRevenue[byProductRevenue[j]]
	})
	for _, id := range byProductRevenue {
		if len(report.Revenue.TopProducts) == topN {
			break
		}
		report.Revenue.TopProducts = append(report.Revenue.TopProducts, models.ProductRevenue{
			Product:     productNames[id],
			TotalAmount: productRevenue[id],
		})
	}

	byProductQty := append([]int(nil), productOrder...)
	sort.SliceStable(byProductQty, func(i, j int) bool {
		return productQty[byProductQty[i]] > productQty[byProductQty[j]]
	})
	for _, id := range byProductQty {
		if len(report.Quantity.TopProducts) == topN {
			break
		}
		report.Quantity.TopProducts = append(report.Quantity.TopProducts, models.ProductSales{
			Product:    productNames[id],
			TotalSales: productQty[id],
		})
	}

	byEmployeeRevenue := append([]int(nil), employeeOrder...)
	sort.SliceStable(byEmployeeRevenue, func(i, j int) bool {
		return employeeRevenue[byEmployeeRevenue[i]] > employeeRevenue[byEmployeeRevenue[j]]
	})
	if len(byEmployeeRevenue) > 0 {
		id := byEmployeeRevenue[0]
		report.Revenue.TopEmployee = &models.EmployeeRevenue{
			SalesBy:     employeeNames[id],
			TotalAmount: employeeRevenue[id],
		}
	}

	byEmployeeQty := append([]int(nil), employeeOrder...)
	sort.SliceStable(byEmployeeQty, func(i, j int) bool {
		return employeeQty[byEmployeeQty[i]] > employeeQty[byEmployeeQty[j]]
	})
	if len(byEmployeeQty) > 0 {
		id := byEmployeeQty[0]
		report.Quantity.TopEmployee = &models.EmployeeSales{
			SalesBy:    employeeNames[id],
			TotalSales: employeeQty[id],
		}
	}

	return report
}

func nameMap(c *fiber.Ctx, table string) (map[int]string, error) {
	rows, err := condb.Pool.Query(c.Context(), `SELECT id, name FROM `+table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := map[int]string{}
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func GetAnalytics(c *fiber.Ctx) error {
	if payload, ok := cache.GetAnalytics(c.Context()); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	rows, err := condb.Pool.Query(c.Context(), `
        SELECT product_id, employee_id, quantity, total_amount
        FROM bills
        ORDER BY id ASC
    `)
	if err != nil {
		return fail(c, err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ProductID, &b.EmployeeID, &b.Quantity, &b.TotalAmount); err != nil {
			return fail(c, err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return fail(c, err)
	}

	productNames, err := nameMap(c, "products")
	if err != nil {
		return fail(c, err)
	}
	employeeNames, err := nameMap(c, "employees")
	if err != nil {
		return fail(c, err)
	}

	report := BuildAnalyticsReport(bills, productNames, employeeNames)

	payload, err := json.Marshal(report)
	if err != nil {
		return fail(c, err)
	}
	cache.SetAnalytics(c.Context(), payload)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}
