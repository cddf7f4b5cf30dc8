package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed-client/internal/application/bills"
	"github.com/jhoicas/billed-client/internal/application/export"
	"github.com/jhoicas/billed-client/internal/application/session"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LoginUC      *session.LoginUseCase
	ListUC       *bills.ListUseCase
	ExportUC     *export.UseCase
	DraftFactory DraftFactory
	Store        gateway.SessionStore
	Recorder     *RouteRecorder
	Log          *logger.Logger
}

// Router registra las rutas de la API local que consume la UI.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.LoginUC, deps.Recorder, deps.Log)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	billsGroup := api.Group("/bills")
	billsHandler := NewBillsHandler(deps.ListUC, deps.ExportUC, deps.Log)
	newBillHandler := NewNewBillHandler(deps.DraftFactory, deps.Store, deps.Recorder, deps.Log)
	billsGroup.Get("/", billsHandler.List)
	billsGroup.Get("/export", billsHandler.Export)
	billsGroup.Post("/justificatif", newBillHandler.Upload)
	billsGroup.Post("/", newBillHandler.Submit)
}
