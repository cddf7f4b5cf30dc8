package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Alert indica a la UI que debe mostrar el mensaje al usuario y limpiar
	// el input que lo provocó (solo errores de validación lo activan).
	Alert bool `json:"alert,omitempty"`
}
