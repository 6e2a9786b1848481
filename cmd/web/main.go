package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/cart"
	"github.com/jhoicas/tienda-web/internal/application/catalog"
	"github.com/jhoicas/tienda-web/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-web/internal/infrastructure/localstore"
	"github.com/jhoicas/tienda-web/internal/interfaces/web"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando tienda")

	store, err := localstore.NewStore(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén local")
	}

	client := backend.NewClient(cfg.Backend, log)
	authGw := backend.NewAuthGateway(client)
	catalogGw := backend.NewCatalogGateway(client)
	cartGw := backend.NewCartGateway(client)

	sessionRepo := localstore.NewSessionRepository(store)
	mirrorRepo := localstore.NewMirrorRepository(store, log)

	authUC := auth.NewAuthUseCase(authGw, sessionRepo, log)
	catalogUC := catalog.NewCatalogUseCase(catalogGw, log)
	cartUC := cart.NewCartUseCase(cartGw, mirrorRepo, log)

	engine := html.New("./web/views", ".html")
	engine.AddFunc("truncate", func(s string, max int) string {
		runes := []rune(s)
		if len(runes) <= max {
			return s
		}
		return string(runes[:max]) + "..."
	})
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		Session:   cfg.Session,
		Log:       log,
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

	log.Info().Msg("tienda detenida")
}
