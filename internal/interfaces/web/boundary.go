package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-web/pkg/logger"
)

// Boundary aísla los fallos de render de una ruta: un error o un panic dentro
// de la ruta se reemplaza por una página de respaldo con un mensaje acotado a
// esa ruta, para que una vista rota no deje en blanco toda la aplicación.
func Boundary(log *logger.Logger, fallback string) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("path", c.Path()).
					Msg("panic en la ruta; se muestra la página de respaldo")
				err = renderFallback(c, fallback)
			}
		}()

		if nextErr := c.Next(); nextErr != nil {
			log.Error().
				Err(nextErr).
				Str("path", c.Path()).
				Msg("error en la ruta; se muestra la página de respaldo")
			return renderFallback(c, fallback)
		}
		return nil
	}
}

func renderFallback(c *fiber.Ctx, fallback string) error {
	return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
		"Title":   "Algo salió mal",
		"Message": fallback,
		"Session": GetSession(c),
	}, "layouts/main")
}
