package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/scope"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func buildOffices() []entity.Office {
	return []entity.Office{
		{ID: "of-bog", Name: "Bogotá", Country: "CO"},
		{ID: "of-mde", Name: "Medellín", Country: "CO"},
		{ID: "of-mad", Name: "Madrid", Country: "ES"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DIRECTOR
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_DirectorVeTodasLasOficinas(t *testing.T) {
	director := &entity.User{ID: "u1", Role: entity.RoleDirector}

	// Las asignaciones de manager no deben influir en un DIRECTOR.
	managerOffices := []entity.ManagerOffice{{UserID: "u1", OfficeID: "of-bog"}}

	sc := scope.Resolve(director, buildOffices(), managerOffices, nil)

	require.Equal(t, 3, sc.Len(), "DIRECTOR debe ver todas las oficinas")
	assert.True(t, sc.Contains("of-bog"))
	assert.True(t, sc.Contains("of-mde"))
	assert.True(t, sc.Contains("of-mad"))
}

// ──────────────────────────────────────────────────────────────────────────────
// MANAGER
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_ManagerSoloVeOficinasAsignadas(t *testing.T) {
	manager := &entity.User{ID: "u2", Role: entity.RoleManager}
	managerOffices := []entity.ManagerOffice{
		{UserID: "u2", OfficeID: "of-bog"},
		{UserID: "u2", OfficeID: "of-mad"},
		{UserID: "otro-manager", OfficeID: "of-mde"}, // de otro manager
	}

	sc := scope.Resolve(manager, buildOffices(), managerOffices, nil)

	assert.Equal(t, 2, sc.Len())
	assert.True(t, sc.Contains("of-bog"))
	assert.True(t, sc.Contains("of-mad"))
	assert.False(t, sc.Contains("of-mde"),
		"las asignaciones de otros managers no deben filtrarse al alcance")
}

func TestResolve_ManagerSinAsignaciones_AlcanceVacio(t *testing.T) {
	manager := &entity.User{ID: "u2", Role: entity.RoleManager}

	sc := scope.Resolve(manager, buildOffices(), nil, nil)

	assert.Equal(t, 0, sc.Len(),
		"manager sin asignaciones debe quedar fail-closed (alcance vacío)")
}

// ──────────────────────────────────────────────────────────────────────────────
// EMPLOYEE
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_EmployeeVeSoloSuOficina(t *testing.T) {
	user := &entity.User{ID: "u3", Role: entity.RoleEmployee}
	emp := &entity.Employee{ID: "e1", OfficeID: "of-mde"}

	sc := scope.Resolve(user, buildOffices(), nil, emp)

	require.Equal(t, 1, sc.Len(), "EMPLOYEE debe ver exactamente su oficina")
	assert.True(t, sc.Contains("of-mde"))
}

func TestResolve_EmployeeSinRegistro_AlcanceVacio(t *testing.T) {
	user := &entity.User{ID: "u3", Role: entity.RoleEmployee}

	sc := scope.Resolve(user, buildOffices(), nil, nil)

	assert.Equal(t, 0, sc.Len(),
		"empleado sin registro de empleado no debe tener acceso a ninguna oficina")
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos límite
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_RolDesconocido_AlcanceVacio(t *testing.T) {
	user := &entity.User{ID: "u4", Role: "SUPERADMIN"}

	sc := scope.Resolve(user, buildOffices(), nil, nil)

	assert.Equal(t, 0, sc.Len(), "rol desconocido debe resolver alcance vacío, nunca abierto")
}

func TestResolve_UsuarioNil_AlcanceVacio(t *testing.T) {
	sc := scope.Resolve(nil, buildOffices(), nil, nil)
	assert.NotNil(t, sc, "Resolve nunca retorna nil")
	assert.Equal(t, 0, sc.Len())
}
