package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/billed-client/internal/application/bills"
	"github.com/jhoicas/billed-client/internal/application/export"
	"github.com/jhoicas/billed-client/internal/application/newbill"
	"github.com/jhoicas/billed-client/internal/application/session"
	"github.com/jhoicas/billed-client/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/billed-client/internal/infrastructure/pdf"
	"github.com/jhoicas/billed-client/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/billed-client/internal/interfaces/http"
	"github.com/jhoicas/billed-client/pkg/config"
	"github.com/jhoicas/billed-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	client := rest.NewClient(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, log)

	recorder := &httpRouter.RouteRecorder{}

	listUC := bills.NewListUseCase(client, log)
	loginUC := session.NewLoginUseCase(client, store, recorder.Navigate, log)
	exportUC := export.NewUseCase(listUC, store, infrapdf.NewMarotoGenerator())
	draftFactory := func() *newbill.UseCase {
		return newbill.NewUseCase(client, store, recorder.Navigate, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billed client API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LoginUC:      loginUC,
		ListUC:       listUC,
		ExportUC:     exportUC,
		DraftFactory: draftFactory,
		Store:        store,
		Recorder:     recorder,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
