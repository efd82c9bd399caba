package routes

import (
	"salesdesk/controllers"
	"salesdesk/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {

	// token issuance
	app.Post("/api/login", controllers.Login)
	app.Post("/api/refresh", controllers.Refresh)

	api := app.Group("/api", middleware.JWTMiddleware)

	// employees
	api.Get("/employees", controllers.ListEmployees)
	api.Post("/employees", controllers.CreateEmployee)
	api.Get("/employees/:id", controllers.GetEmployeeByID)
	api.Put("/employees/:id", controllers.UpdateEmployee)
	api.Delete("/employees/:id", controllers.DeleteEmployee)
	api.Get("/employees/:id/password", controllers.GetEmployeePassword)
	api.Put("/employees/:id/password", controllers.UpdateEmployeePassword)

	// products
	api.Get("/products", controllers.ListProducts)
	api.Post("/products", controllers.CreateProduct)
	api.Get("/products/:id", controllers.GetProductByID)
	api.Put("/products/:id", controllers.UpdateProduct)
	api.Delete("/products/:id", controllers.DeleteProduct)

	// customers
	api.Get("/customers", controllers.ListCustomers)
	api.Post("/customers", controllers.CreateCustomer)
	api.Get("/customers/:id", controllers.GetCustomerByID)
	api.Put("/customers/:id", controllers.UpdateCustomer)
	api.Delete("/customers/:id", controllers.DeleteCustomer)

	// bills
	api.Get("/bills", controllers.ListBills)
	api.Post("/bills", controllers.CreateBill)
	api.Get("/bills/:id", controllers.GetBillByID)
	api.Put("/bills/:id", controllers.UpdateBill)
	api.Delete("/bills/:id", controllers.DeleteBill)

	// analytics
	api.Get("/analytics", controllers.GetAnalytics)
}
