package gateway

// SessionKey clave bajo la que se persiste la sesión actual.
const SessionKey = "user"

// SessionStore superficie clave-valor local, equivalente al localStorage de la
// app original. GetItem devuelve cadena vacía sin error cuando la clave no
// existe. La escriben solo los flujos de sesión; el resto únicamente lee.
type SessionStore interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Clear() error
}
