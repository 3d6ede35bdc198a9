// seed puebla la base de datos con datos de demostración: oficinas,
// departamentos, empleados con salario, usuarios por rol, proyectos con
// presupuesto, asignaciones, gastos recurrentes y horas registradas.
//
// Uso: go run ./cmd/seed
// Idempotencia: no se valida; ejecutar sobre una base vacía.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

const demoPassword = "demo1234"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	officeRepo := postgres.NewOfficeRepository(pool)
	managerOfficeRepo := postgres.NewManagerOfficeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	technologyRepo := postgres.NewTechnologyRepository(pool)

	now := time.Now()

	// ── Oficinas ──────────────────────────────────────────────────────
	bogota := &entity.Office{
		ID: uuid.NewString(), Name: "Bogotá", Country: "Colombia",
		Timezone: "America/Bogota", CreatedAt: now, UpdatedAt: now,
	}
	medellin := &entity.Office{
		ID: uuid.NewString(), Name: "Medellín", Country: "Colombia",
		Timezone: "America/Bogota", CreatedAt: now, UpdatedAt: now,
	}
	madrid := &entity.Office{
		ID: uuid.NewString(), Name: "Madrid", Country: "España",
		Timezone: "Europe/Madrid", CreatedAt: now, UpdatedAt: now,
	}
	for _, o := range []*entity.Office{bogota, medellin, madrid} {
		if err := officeRepo.Create(o); err != nil {
			log.Fatal().Err(err).Str("office", o.Name).Msg("crear oficina")
		}
	}
	log.Info().Int("count", 3).Msg("oficinas creadas")

	// ── Departamentos ─────────────────────────────────────────────────
	newDept := func(officeID, name string) *entity.Department {
		d := &entity.Department{
			ID: uuid.NewString(), OfficeID: officeID, Name: name,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := departmentRepo.Create(d); err != nil {
			log.Fatal().Err(err).Str("department", name).Msg("crear departamento")
		}
		return d
	}
	devBog := newDept(bogota.ID, "Desarrollo")
	qaBog := newDept(bogota.ID, "Calidad")
	devMed := newDept(medellin.ID, "Desarrollo")
	opsMad := newDept(madrid.ID, "Operaciones")
	log.Info().Int("count", 4).Msg("departamentos creados")

	// ── Empleados ─────────────────────────────────────────────────────
	newEmployee := func(officeID string, deptID *string, first, last, email, position string, salary int64, hired time.Time) *entity.Employee {
		e := &entity.Employee{
			ID: uuid.NewString(), OfficeID: officeID, DepartmentID: deptID,
			FirstName: first, LastName: last, Email: email, Position: position,
			Status:   entity.EmployeeStatusActive,
			Salary:   decimal.NewNullDecimal(decimal.NewFromInt(salary)),
			HireDate: hired, CreatedAt: now, UpdatedAt: now,
		}
		if err := employeeRepo.Create(e); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("crear empleado")
		}
		return e
	}
	ana := newEmployee(bogota.ID, &devBog.ID, "Ana", "García", "ana.garcia@gestionpro.co", "Desarrolladora Senior", 96000, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))
	carlos := newEmployee(bogota.ID, &devBog.ID, "Carlos", "Rojas", "carlos.rojas@gestionpro.co", "Desarrollador", 72000, time.Date(2022, 7, 15, 0, 0, 0, 0, time.UTC))
	lucia := newEmployee(bogota.ID, &qaBog.ID, "Lucía", "Mendoza", "lucia.mendoza@gestionpro.co", "Analista QA", 58000, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))
	jorge := newEmployee(medellin.ID, &devMed.ID, "Jorge", "Paredes", "jorge.paredes@gestionpro.co", "Desarrollador Backend", 68000, time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC))
	marta := newEmployee(madrid.ID, &opsMad.ID, "Marta", "Iglesias", "marta.iglesias@gestionpro.es", "Ingeniera DevOps", 84000, time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC))
	// Sin departamento asignado: debe caer en el bucket "Sin departamento".
	pedro := newEmployee(medellin.ID, nil, "Pedro", "Salazar", "pedro.salazar@gestionpro.co", "Consultor", 60000, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
	log.Info().Int("count", 6).Msg("empleados creados")

	// ── Usuarios ──────────────────────────────────────────────────────
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash de contraseña")
	}
	newUser := func(email, name, role string, employeeID *string) *entity.User {
		u := &entity.User{
			ID: uuid.NewString(), Email: email, PasswordHash: string(hash),
			Name: name, Role: role, EmployeeID: employeeID,
			Status: "active", CreatedAt: now, UpdatedAt: now,
		}
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("crear usuario")
		}
		return u
	}
	newUser("director@gestionpro.co", "Dirección General", entity.RoleDirector, nil)
	managerBog := newUser("manager.bogota@gestionpro.co", "Gerencia Bogotá", entity.RoleManager, nil)
	managerMulti := newUser("manager.regional@gestionpro.co", "Gerencia Regional", entity.RoleManager, nil)
	newUser("ana.garcia@gestionpro.co", "Ana García", entity.RoleEmployee, &ana.ID)
	newUser("jorge.paredes@gestionpro.co", "Jorge Paredes", entity.RoleEmployee, &jorge.ID)

	assignOffice := func(userID, officeID string) {
		mo := &entity.ManagerOffice{
			ID: uuid.NewString(), UserID: userID, OfficeID: officeID, CreatedAt: now,
		}
		if err := managerOfficeRepo.Assign(mo); err != nil {
			log.Fatal().Err(err).Msg("asignar oficina a manager")
		}
	}
	assignOffice(managerBog.ID, bogota.ID)
	assignOffice(managerMulti.ID, bogota.ID)
	assignOffice(managerMulti.ID, medellin.ID)
	log.Info().Int("count", 5).Msg("usuarios creados")

	// ── Proyectos ─────────────────────────────────────────────────────
	newProject := func(name, status string, offices []string, start time.Time, end *time.Time, budget int64, internal bool) *entity.Project {
		p := &entity.Project{
			ID: uuid.NewString(), OfficeID: offices[0], OfficeIDs: offices,
			Name: name, Status: status, StartDate: start, EndDate: end,
			Budget:     decimal.NewNullDecimal(decimal.NewFromInt(budget)),
			IsInternal: internal, CreatedAt: now, UpdatedAt: now,
		}
		if err := projectRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("project", name).Msg("crear proyecto")
		}
		return p
	}
	endBanca := time.Date(now.Year(), now.Month(), 5, 0, 0, 0, 0, time.UTC)
	portal := newProject("Portal Clientes", entity.ProjectStatusActive,
		[]string{bogota.ID}, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), nil, 180000, false)
	banca := newProject("Migración Banca", entity.ProjectStatusCompleted,
		[]string{bogota.ID, medellin.ID}, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), &endBanca, 250000, false)
	intranet := newProject("Intranet Corporativa", entity.ProjectStatusPlanning,
		[]string{madrid.ID}, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), nil, 45000, true)
	log.Info().Int("count", 3).Msg("proyectos creados")

	// ── Asignaciones ──────────────────────────────────────────────────
	newAssignment := func(projectID, employeeID string, allocation int64, start time.Time, hours int64) {
		a := &entity.ProjectEmployee{
			ID: uuid.NewString(), ProjectID: projectID, EmployeeID: employeeID,
			Allocation: decimal.NewFromInt(allocation), StartDate: start,
			CreatedAt: now, UpdatedAt: now,
		}
		if hours > 0 {
			a.Hours = decimal.NewNullDecimal(decimal.NewFromInt(hours))
		}
		if err := assignmentRepo.Create(a); err != nil {
			log.Fatal().Err(err).Msg("crear asignación")
		}
	}
	newAssignment(portal.ID, ana.ID, 80, portal.StartDate, 420)
	newAssignment(portal.ID, carlos.ID, 100, portal.StartDate, 510)
	newAssignment(portal.ID, lucia.ID, 50, portal.StartDate, 180)
	newAssignment(banca.ID, jorge.ID, 100, banca.StartDate, 960)
	// Ana queda sobre-asignada (80 + 40 = 120%): caso visible en el dashboard.
	newAssignment(banca.ID, ana.ID, 40, banca.StartDate, 300)
	newAssignment(intranet.ID, marta.ID, 30, intranet.StartDate, 0)
	newAssignment(intranet.ID, pedro.ID, 60, intranet.StartDate, 0)
	log.Info().Int("count", 7).Msg("asignaciones creadas")

	// ── Gastos ────────────────────────────────────────────────────────
	newExpense := func(projectID, category, description string, monthly int64, start time.Time) {
		e := &entity.ProjectExpense{
			ID: uuid.NewString(), ProjectID: projectID, Category: category,
			Description: description, MonthlyCost: decimal.NewFromInt(monthly),
			StartDate: start, CreatedAt: now, UpdatedAt: now,
		}
		if err := expenseRepo.Create(e); err != nil {
			log.Fatal().Err(err).Msg("crear gasto")
		}
	}
	newExpense(portal.ID, "Infraestructura", "Clúster Kubernetes", 1200, portal.StartDate)
	newExpense(portal.ID, "Licencias", "Suite de diseño", 350, portal.StartDate)
	newExpense(banca.ID, "Infraestructura", "Base de datos gestionada", 900, banca.StartDate)
	newExpense(banca.ID, "Consultoría", "Auditoría de seguridad", 2500, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	log.Info().Int("count", 4).Msg("gastos creados")

	// ── Horas registradas ─────────────────────────────────────────────
	var entries []entity.TimeEntry
	addEntry := func(employeeID, projectID string, day time.Time, hours string, desc string) {
		h, _ := decimal.NewFromString(hours)
		entries = append(entries, entity.TimeEntry{
			ID: uuid.NewString(), EmployeeID: employeeID, ProjectID: projectID,
			Date: day, Hours: h, Description: desc,
			CreatedAt: now, UpdatedAt: now,
		})
	}
	// Última semana laboral completa de Ana: lunes a viernes.
	monday := now.AddDate(0, 0, -7)
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		day := monday.AddDate(0, 0, i)
		addEntry(ana.ID, portal.ID, day, "6.5", "Desarrollo de módulo de pagos")
		addEntry(ana.ID, banca.ID, day, "1.5", "Soporte post-migración")
		addEntry(carlos.ID, portal.ID, day, "8", "Integración API de notificaciones")
	}
	addEntry(jorge.ID, banca.ID, monday, "8", "Cierre de incidencias")
	addEntry(jorge.ID, banca.ID, monday.AddDate(0, 0, 1), "6", "Documentación de entrega")
	if err := timeEntryRepo.CreateBatch(ctx, entries); err != nil {
		log.Fatal().Err(err).Msg("registrar horas")
	}
	log.Info().Int("count", len(entries)).Msg("horas registradas")

	// ── Tecnologías ───────────────────────────────────────────────────
	newTech := func(name, category string) *entity.Technology {
		t := &entity.Technology{
			ID: uuid.NewString(), Name: name, Category: category, CreatedAt: now,
		}
		if err := technologyRepo.Create(t); err != nil {
			log.Fatal().Err(err).Str("technology", name).Msg("crear tecnología")
		}
		return t
	}
	goTech := newTech("Go", "lenguaje")
	pgTech := newTech("PostgreSQL", "base de datos")
	reactTech := newTech("React", "framework")
	awsTech := newTech("AWS", "cloud")
	attach := func(projectID, techID string) {
		if err := technologyRepo.Attach(projectID, techID); err != nil {
			log.Fatal().Err(err).Msg("asociar tecnología")
		}
	}
	attach(portal.ID, goTech.ID)
	attach(portal.ID, pgTech.ID)
	attach(portal.ID, reactTech.ID)
	attach(banca.ID, goTech.ID)
	attach(banca.ID, awsTech.ID)
	log.Info().Int("count", 4).Msg("tecnologías creadas")

	log.Info().
		Str("director", "director@gestionpro.co").
		Str("password", demoPassword).
		Msg("datos de demostración cargados")
}
