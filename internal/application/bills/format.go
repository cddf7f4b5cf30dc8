package bills

import (
	"fmt"
	"time"

	"github.com/jhoicas/billed-client/internal/domain/entity"
)

// Abreviaturas francesas de mes, como las muestra la app original.
var monthAbbrev = [...]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai", "Juin",
	"Juil.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// FormatDate convierte una fecha ISO (YYYY-MM-DD) a la forma corta localizada,
// ej. "2021-06-04" -> "4 Juin 21".
func FormatDate(raw string) (string, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s %02d", t.Day(), monthAbbrev[t.Month()-1], t.Year()%100), nil
}

// Etiquetas de estado que espera la vista. El mapeo es literal, incluida la
// etiqueta inglesa de refused que arrastra la app original.
var statusLabels = map[string]string{
	entity.StatusPending:  "En attente",
	entity.StatusAccepted: "Accepté",
	entity.StatusRefused:  "Refused",
}

// FormatStatus traduce el estado al vocabulario de la vista; los valores no
// reconocidos pasan sin cambio.
func FormatStatus(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
