package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// CopiedEntry es una entrada de horas desligada de su día de origen, lista
// para reproducirse en otros días.
type CopiedEntry struct {
	ProjectID   string
	Hours       decimal.Decimal
	Description string
}

// CopiedSet las entradas copiadas de un día de origen.
type CopiedSet struct {
	SourceDate time.Time
	Entries    []CopiedEntry
}

// IsEmpty indica si no hay nada que pegar.
func (s CopiedSet) IsEmpty() bool { return len(s.Entries) == 0 }

// CopyDay copia las entradas que pertenecen al día indicado (comparación por
// clave de día normalizada). Un día sin entradas produce un set vacío, no un
// error: rechazarlo es decisión del llamador.
func CopyDay(date time.Time, entries []entity.TimeEntry) CopiedSet {
	key := DateKey(date)
	set := CopiedSet{SourceDate: date}
	for _, e := range entries {
		if DateKey(e.Date) != key {
			continue
		}
		set.Entries = append(set.Entries, CopiedEntry{
			ProjectID:   e.ProjectID,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}
	return set
}

// PasteToDays reproduce cada entrada copiada en cada día destino, suprimiendo
// los pares (proyecto, día destino) que ya existen en existing. La supresión
// usa un set de claves par — nunca un escaneo O(n²) por candidato.
//
// Devuelve las entradas a crear sin ID ni empleado: eso lo completa la capa
// de aplicación al persistir.
func PasteToDays(copied CopiedSet, targets []time.Time, existing []entity.TimeEntry) []entity.TimeEntry {
	if copied.IsEmpty() || len(targets) == 0 {
		return nil
	}

	taken := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		taken[pairKey(e.ProjectID, e.Date)] = struct{}{}
	}

	var toCreate []entity.TimeEntry
	for _, target := range targets {
		for _, c := range copied.Entries {
			if _, exists := taken[pairKey(c.ProjectID, target)]; exists {
				continue
			}
			toCreate = append(toCreate, entity.TimeEntry{
				ProjectID:   c.ProjectID,
				Date:        target,
				Hours:       c.Hours,
				Description: c.Description,
			})
		}
	}
	return toCreate
}

func pairKey(projectID string, date time.Time) string {
	return projectID + "|" + DateKey(date)
}
