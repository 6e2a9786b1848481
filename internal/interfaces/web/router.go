package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/cart"
	"github.com/jhoicas/tienda-web/internal/application/catalog"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.CatalogUseCase
	CartUC    *cart.CartUseCase
	Session   config.SessionConfig
	Log       *logger.Logger
}

// Router registra las rutas de la tienda. Cada grupo de vistas lleva su propio
// Boundary con un mensaje de respaldo acotado a esa ruta.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.AuthUC, deps.Session))

	// Raíz → catálogo
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/products", fiber.StatusSeeOther)
	})

	// Login / registro (solo para no autenticados)
	authHandler := NewAuthHandler(deps.AuthUC)
	login := app.Group("/login",
		Boundary(deps.Log, "Hubo un problema al cargar la página de inicio de sesión."),
		RedirectIfAuthenticated(),
	)
	login.Get("/", authHandler.Show)
	login.Post("/", authHandler.Login)
	app.Post("/register", RedirectIfAuthenticated(), authHandler.Register)
	app.Post("/logout", authHandler.Logout)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := app.Group("/products",
		Boundary(deps.Log, "No se pudieron cargar los productos. Inténtalo de nuevo."),
	)
	// La creación (protegida) va antes que /:id para que "new" no se capture como ID.
	products.Get("/new", RequireAuth(), catalogHandler.NewForm)
	products.Post("/new", RequireAuth(), catalogHandler.Create)
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.Detail)

	// Carrito
	cartHandler := NewCartHandler(deps.CartUC, deps.Log)
	products.Post("/:id/cart", cartHandler.Add)
	cartGroup := app.Group("/cart",
		Boundary(deps.Log, "No se pudo cargar el carrito. Inténtalo de nuevo."),
	)
	cartGroup.Get("/", cartHandler.Show)
	cartGroup.Post("/items/:id", RequireAuth(), cartHandler.UpdateItem)
	cartGroup.Post("/items/:id/delete", RequireAuth(), cartHandler.RemoveItem)
	cartGroup.Post("/clear", RequireAuth(), cartHandler.Clear)
}
