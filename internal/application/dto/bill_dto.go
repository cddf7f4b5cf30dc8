package dto

// BillView proyección lista-para-mostrar de una nota de frais: fecha en forma
// corta localizada y estado traducido a la etiqueta de la vista.
type BillView struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Date         string `json:"date"` // "4 Juin 21", o el valor crudo si no parseó
	Amount       string `json:"amount"`
	Status       string `json:"status"` // En attente / Accepté / Refused
	Email        string `json:"email"`
	FileURL      string `json:"fileUrl,omitempty"`
	FileName     string `json:"fileName,omitempty"`
	Commentary   string `json:"commentary,omitempty"`
	CommentAdmin string `json:"commentAdmin,omitempty"`
}

// BillForm campos del formulario "Envoyer une note de frais". Todos llegan como
// texto; el caso de uso valida monto y porcentaje al armar la nota.
type BillForm struct {
	Type       string `json:"type" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Amount     string `json:"amount" validate:"required"`
	Date       string `json:"date" validate:"required"`
	VAT        string `json:"vat" validate:"omitempty"`
	Pct        string `json:"pct" validate:"omitempty,numeric"`
	Commentary string `json:"commentary" validate:"omitempty,max=500"`
}

// UploadResponse resultado de la fase 1 hacia la UI.
type UploadResponse struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}
