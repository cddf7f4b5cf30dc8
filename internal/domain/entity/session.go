package entity

// Roles válidos para Session.
const (
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

// SessionConnected único estado posible de una sesión persistida.
const SessionConnected = "connected"

// Session registro persistido localmente bajo la clave "user". Se sobreescribe
// en cada login y no expira por sí solo (vive lo que viva el almacén local).
// El password va en claro: el modelo real de autenticación es un no-goal del
// sistema, la sesión es un flag local simulado.
type Session struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status"`
}
