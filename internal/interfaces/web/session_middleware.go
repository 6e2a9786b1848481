package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/config"
)

// Locals keys para la sesión y el ID de visitante en Fiber.
const (
	LocalSession   = "session"
	LocalVisitorID = "visitor_id"
)

// SessionMiddleware identifica al visitante (cookie UUID, se crea si falta) y
// reconstruye su sesión desde la entrada persistida, dejando ambos en c.Locals
// para los handlers y las plantillas.
func SessionMiddleware(authUC *auth.AuthUseCase, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		visitorID := c.Cookies(cfg.VisitorCookie)
		if visitorID == "" || uuid.Validate(visitorID) != nil {
			visitorID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.VisitorCookie,
				Value:    visitorID,
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				HTTPOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(LocalVisitorID, visitorID)
		c.Locals(LocalSession, authUC.Current(visitorID))
		return c.Next()
	}
}

// RequireAuth redirige a /login a los visitantes no autenticados.
// Protege acciones como la creación de productos.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).Authenticated {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RedirectIfAuthenticated aleja a los usuarios ya autenticados de la vista de
// login/registro.
func RedirectIfAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c).Authenticated {
			return c.Redirect("/products", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del SessionMiddleware).
func GetSession(c *fiber.Ctx) entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}
	}
	s, _ := v.(entity.Session)
	return s
}

// GetVisitorID devuelve el ID de visitante del contexto.
func GetVisitorID(c *fiber.Ctx) string {
	v := c.Locals(LocalVisitorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
