package domain

// Route destino de navegación de la UI (hash-routes de la app Billed).
type Route string

const (
	RouteLogin     Route = "/"
	RouteBills     Route = "#employee/bills"
	RouteNewBill   Route = "#employee/bill/new"
	RouteDashboard Route = "#admin/dashboard"
)

// Navigator callback que invocan los casos de uso al completar una operación
// que cambia de vista. La capa de presentación decide qué hacer con la ruta.
type Navigator func(to Route)
