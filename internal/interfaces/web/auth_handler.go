package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-web/internal/application/auth"
)

// AuthHandler vistas de login/registro y cierre de sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Show renderiza la vista con ambos formularios, login y registro, en la misma
// página.
func (h *AuthHandler) Show(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title":   "Iniciar sesión",
		"Session": GetSession(c),
	}, "layouts/main")
}

// Login procesa el formulario de inicio de sesión. El resultado es uniforme:
// con éxito redirige a /products, si no re-renderiza la vista con el error en
// línea, sin excepciones de por medio.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	result := h.uc.Login(c.Context(), GetVisitorID(c), email, password)
	if !result.Success {
		return c.Render("login", fiber.Map{
			"Title":      "Iniciar sesión",
			"Session":    GetSession(c),
			"LoginError": result.Error,
			"Email":      email,
		}, "layouts/main")
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// Register procesa el formulario de registro; mismo contrato uniforme que Login.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	firstName := c.FormValue("firstName")
	lastName := c.FormValue("lastName")
	email := c.FormValue("email")
	password := c.FormValue("password")

	result := h.uc.Register(c.Context(), GetVisitorID(c), firstName, lastName, email, password)
	if !result.Success {
		return c.Render("login", fiber.Map{
			"Title":         "Iniciar sesión",
			"Session":       GetSession(c),
			"RegisterError": result.Error,
			"FirstName":     firstName,
			"LastName":      lastName,
			"RegEmail":      email,
		}, "layouts/main")
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// Logout limpia la sesión persistida y vuelve al catálogo.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetVisitorID(c))
	return c.Redirect("/products", fiber.StatusSeeOther)
}
