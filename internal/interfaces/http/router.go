package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	appschedule "github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	OfficeUC     *usecase.OfficeUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	ProjectUC    *usecase.ProjectUseCase
	TechnologyUC *usecase.TechnologyUseCase
	DashboardUC  *analytics.DashboardUseCase
	LedgerUC     *analytics.LedgerUseCase
	TimesheetUC  *appschedule.TimesheetUseCase
	InvoiceUC    *billing.InvoiceUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleDirector)
	managerUp := RequireRole(entity.RoleDirector, entity.RoleManager)

	// Offices (lectura para todos los roles; escritura solo DIRECTOR)
	offices := protected.Group("/offices")
	officeHandler := NewOfficeHandler(deps.OfficeUC)
	offices.Get("/", officeHandler.List)
	offices.Get("/:id", officeHandler.GetByID)
	offices.Post("/", adminOnly, officeHandler.Create)
	offices.Post("/managers", adminOnly, officeHandler.AssignManager)
	offices.Delete("/managers/:userId/:officeId", adminOnly, officeHandler.RemoveManager)

	// Departments
	departments := protected.Group("/departments")
	departments.Get("/", officeHandler.ListDepartments)
	departments.Post("/", managerUp, officeHandler.CreateDepartment)

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", managerUp, employeeHandler.Create)
	employees.Put("/:id/status", managerUp, employeeHandler.UpdateStatus)

	// Projects y subrecursos
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.LedgerUC)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Post("/", managerUp, projectHandler.Create)
	projects.Put("/:id/status", managerUp, projectHandler.UpdateStatus)
	projects.Get("/:id/ledger", managerUp, projectHandler.GetLedger)
	projects.Post("/:id/assignments", managerUp, projectHandler.AssignEmployee)
	projects.Get("/:id/assignments", projectHandler.ListAssignments)
	projects.Post("/:id/expenses", managerUp, projectHandler.AddExpense)
	projects.Get("/:id/expenses", managerUp, projectHandler.ListExpenses)
	projects.Delete("/:id/expenses/:expenseId", managerUp, projectHandler.RemoveExpense)
	projects.Post("/:id/technologies/:techId", managerUp, projectHandler.AttachTechnology)
	projects.Get("/:id/technologies", projectHandler.ListTechnologies)
	projects.Get("/:id/invoices", managerUp, invoiceHandler.ListByProject)

	// Technologies (catálogo)
	technologies := protected.Group("/technologies")
	technologyHandler := NewTechnologyHandler(deps.TechnologyUC)
	technologies.Get("/", technologyHandler.List)
	technologies.Post("/", managerUp, technologyHandler.Create)

	// Dashboard (el alcance lo resuelve el caso de uso según el rol)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Timesheet (calendario del empleado del token)
	timesheet := protected.Group("/timesheet")
	timesheetHandler := NewTimesheetHandler(deps.TimesheetUC)
	timesheet.Get("/week", timesheetHandler.GetWeek)
	timesheet.Get("/month", timesheetHandler.GetMonth)
	timesheet.Post("/entries", timesheetHandler.CreateEntry)
	timesheet.Post("/paste", timesheetHandler.PasteDay)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.Post("/", managerUp, invoiceHandler.Create)
	invoices.Get("/:id/pdf", managerUp, invoiceHandler.DownloadPDF)
}
