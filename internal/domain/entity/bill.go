package entity

import "github.com/shopspring/decimal"

// Estados del ciclo de vida de una nota de frais. Los fija el backend y el
// flujo de revisión del administrador; al crearla siempre queda en pending.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRefused  = "refused"
)

// Bill nota de frais del empleado. El dueño del dato es el store remoto;
// el cliente solo maneja copias efímeras para mostrar o enviar.
type Bill struct {
	ID           string          `json:"id,omitempty"`
	Email        string          `json:"email"` // dueño de la nota, solo atribución
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"` // YYYY-MM-DD tal como se capturó
	VAT          string          `json:"vat,omitempty"`
	Pct          int             `json:"pct"`
	Commentary   string          `json:"commentary,omitempty"`
	FileURL      string          `json:"fileUrl,omitempty"`  // se llena tras cargar el justificante
	FileName     string          `json:"fileName,omitempty"`
	Status       string          `json:"status"`
	CommentAdmin string          `json:"commentAdmin,omitempty"` // nota del revisor, solo lectura aquí
}
