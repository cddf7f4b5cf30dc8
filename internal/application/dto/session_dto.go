package dto

// LoginRequest entrada de los formularios de login (empleado o admin).
type LoginRequest struct {
	Type     string `json:"type" validate:"required,oneof=Employee Admin"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RedirectResponse destino al que debe navegar la UI tras la operación.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}
