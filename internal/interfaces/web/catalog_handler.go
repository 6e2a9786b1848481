package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-web/internal/application/catalog"
	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
)

// CatalogHandler vistas del catálogo: listado con búsqueda y paginación,
// detalle y formulario de creación.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List renderiza el catálogo. El término de búsqueda viaja en ?q y la página en
// ?page; el formulario de búsqueda no envía page, así que cada búsqueda nueva
// vuelve naturalmente a la página 1.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	session := GetSession(c)
	term := c.Query("q")
	page := c.QueryInt("page", 1)

	view := h.uc.Browse(c.Context(), session.Token, term, page)

	return c.Render("products", fiber.Map{
		"Title":   "Productos",
		"Session": session,
		"View":    view,
		"Added":   c.Query("added") != "",
	}, "layouts/main")
}

// Detail renderiza la vista de detalle de un producto.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	session := GetSession(c)
	id := c.Params("id")

	product, err := h.uc.Detail(c.Context(), session.Token, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
				"Title":   "Producto no encontrado",
				"Message": "El producto que buscas no existe o ya no está disponible.",
				"Session": session,
			}, "layouts/main")
		}
		return err
	}

	return c.Render("product_detail", fiber.Map{
		"Title":   product.Name,
		"Session": session,
		"Product": product,
		"Added":   c.Query("added") != "",
	}, "layouts/main")
}

// NewForm renderiza el formulario de creación (ruta protegida).
func (h *CatalogHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("product_new", fiber.Map{
		"Title":      "Agregar producto",
		"Session":    GetSession(c),
		"Categories": dto.CategoryOptions,
		"Fields":     map[string]string{},
	}, "layouts/main")
}

// Create procesa el formulario de creación. Los errores de validación o del
// backend se muestran en línea re-renderizando el formulario con los valores
// ingresados; con éxito redirige al catálogo.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	session := GetSession(c)
	fields := map[string]string{
		"name":        c.FormValue("name"),
		"description": c.FormValue("description"),
		"price":       c.FormValue("price"),
		"discount":    c.FormValue("discount"),
		"stock":       c.FormValue("stock"),
		"categoryId":  c.FormValue("categoryId"),
	}

	in, parseErr := parseProductForm(fields)
	if parseErr == nil {
		parseErr = h.uc.Create(c.Context(), session.Token, in)
	}
	if parseErr != nil {
		return c.Render("product_new", fiber.Map{
			"Title":      "Agregar producto",
			"Session":    session,
			"Categories": dto.CategoryOptions,
			"Fields":     fields,
			"Error":      createErrorMessage(parseErr),
		}, "layouts/main")
	}
	return c.Redirect("/products", fiber.StatusSeeOther)
}

// parseProductForm convierte los campos del formulario. Descuento vacío vale 0;
// montos o stock no numéricos son entrada inválida.
func parseProductForm(fields map[string]string) (dto.CreateProductRequest, error) {
	var in dto.CreateProductRequest
	in.Name = fields["name"]
	in.Description = fields["description"]
	in.CategoryID = fields["categoryId"]

	if fields["price"] == "" || fields["stock"] == "" {
		return in, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(fields["price"])
	if err != nil {
		return in, domain.ErrInvalidInput
	}
	in.Price = price

	in.Discount = decimal.Zero
	if fields["discount"] != "" {
		discount, err := decimal.NewFromString(fields["discount"])
		if err != nil {
			return in, domain.ErrInvalidInput
		}
		in.Discount = discount
	}

	stock, err := strconv.Atoi(fields["stock"])
	if err != nil {
		return in, domain.ErrInvalidInput
	}
	in.Stock = stock
	return in, nil
}

func createErrorMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) {
		return "Completa todos los campos requeridos con valores válidos."
	}
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return remote.UserMessage("No se pudo crear el producto. Inténtalo de nuevo.")
	}
	return "No se pudo crear el producto. Inténtalo de nuevo."
}
