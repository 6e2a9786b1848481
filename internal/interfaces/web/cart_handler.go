package web

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-web/internal/application/cart"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// CartHandler vistas y acciones del carrito.
type CartHandler struct {
	uc  *cart.CartUseCase
	log *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// Add procesa "agregar al carrito". El formulario trae el snapshot del producto
// en campos ocultos: así el espejo local se escribe aunque el backend esté
// caído y no hace falta un refetch por clic. El usuario nunca ve un error aquí;
// el fallo remoto queda solo en el log.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	product := productFromForm(c)
	if product.ID == "" {
		h.log.Warn().Msg("agregar al carrito sin ID de producto; se ignora")
		return c.Redirect("/products", fiber.StatusSeeOther)
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	session := GetSession(c)
	if err := h.uc.Add(c.Context(), session.Token, GetVisitorID(c), product, quantity); err != nil {
		h.log.Warn().Err(err).Str("product_id", product.ID).Msg("agregar al carrito")
	}

	back := c.FormValue("back", "/products")
	if !strings.HasPrefix(back, "/") {
		back = "/products"
	}
	separator := "?"
	if strings.Contains(back, "?") {
		separator = "&"
	}
	return c.Redirect(back+separator+"added=1", fiber.StatusSeeOther)
}

// Show renderiza el carrito: siempre el espejo local y, si hay sesión, también
// el carrito remoto autoritativo. Que el remoto falle no rompe la vista.
func (h *CartHandler) Show(c *fiber.Ctx) error {
	session := GetSession(c)
	items := h.uc.Local(GetVisitorID(c))

	var remote *entity.RemoteCart
	if session.Authenticated {
		var err error
		remote, err = h.uc.Remote(c.Context(), session.Token)
		if err != nil {
			h.log.Warn().Err(err).Msg("carrito remoto no disponible; se muestra solo el espejo local")
		}
	}

	return c.Render("cart", fiber.Map{
		"Title":   "Carrito",
		"Session": session,
		"Items":   items,
		"Remote":  remote,
		"Total":   mirrorTotal(items),
	}, "layouts/main")
}

// UpdateItem cambia la cantidad de una línea remota.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	quantity, err := strconv.Atoi(c.FormValue("quantity", "1"))
	if err != nil {
		return domain.ErrInvalidInput
	}
	session := GetSession(c)
	if err := h.uc.UpdateQuantity(c.Context(), session.Token, c.Params("id"), quantity); err != nil {
		h.log.Warn().Err(err).Str("item_id", c.Params("id")).Msg("actualizar línea remota")
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// RemoveItem elimina una línea remota.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	session := GetSession(c)
	if err := h.uc.Remove(c.Context(), session.Token, c.Params("id")); err != nil {
		h.log.Warn().Err(err).Str("item_id", c.Params("id")).Msg("eliminar línea remota")
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// Clear vacía el carrito remoto.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	session := GetSession(c)
	if err := h.uc.Clear(c.Context(), session.Token); err != nil {
		h.log.Warn().Err(err).Msg("vaciar carrito remoto")
	}
	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// productFromForm reconstruye el snapshot del producto desde los campos ocultos
// del formulario. Montos ilegibles quedan en cero: el snapshot es para render
// fuera de línea, no para facturar.
func productFromForm(c *fiber.Ctx) entity.Product {
	price, _ := decimal.NewFromString(c.FormValue("price", "0"))
	discount, _ := decimal.NewFromString(c.FormValue("discount", "0"))
	stock, _ := strconv.Atoi(c.FormValue("stock", "0"))

	product := entity.Product{
		ID:          c.FormValue("productId"),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Discount:    discount,
		Stock:       stock,
		Image:       c.FormValue("image"),
	}
	if categoryName := c.FormValue("category"); categoryName != "" {
		product.Category = entity.CategoryRef{Kind: entity.CategoryName, Name: categoryName}
	}
	return product
}

// mirrorTotal suma precio final × cantidad sobre el espejo local.
func mirrorTotal(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.FinalPrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
