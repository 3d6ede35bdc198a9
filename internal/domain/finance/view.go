package finance

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// AssignmentView es la vista inmutable pre-unida (asignación + empleado) que
// consumen los agregados. El join se hace una sola vez en la capa de
// aplicación, por valor: los agregados nunca mutan registros compartidos ni
// dependen de un grafo de relaciones poblado en sitio.
type AssignmentView struct {
	Assignment entity.ProjectEmployee
	Employee   entity.Employee
	// EmployeeFound es false cuando la asignación referencia un empleado que
	// no está en la colección cargada; la contribución de costo es cero.
	EmployeeFound bool
}

// JoinAssignments construye las vistas uniendo cada asignación con su
// empleado por ID. Asignaciones huérfanas se conservan con EmployeeFound
// en false para que los agregados las traten como costo cero en lugar de
// descartarlas silenciosamente.
func JoinAssignments(assignments []entity.ProjectEmployee, employees []entity.Employee) []AssignmentView {
	byID := make(map[string]entity.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	views := make([]AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		emp, ok := byID[a.EmployeeID]
		views = append(views, AssignmentView{Assignment: a, Employee: emp, EmployeeFound: ok})
	}
	return views
}
