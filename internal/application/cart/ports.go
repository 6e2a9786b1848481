package cart

import (
	"context"

	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// Gateway puerto de salida hacia el servicio de carrito del backend REST.
// Para tests se inyecta un mock.
type Gateway interface {
	// CreateCart crea el carrito del usuario (POST /carts).
	CreateCart(ctx context.Context, token string) (*entity.RemoteCart, error)
	// MyCart obtiene el carrito vigente (GET /carts/my-cart).
	MyCart(ctx context.Context, token string) (*entity.RemoteCart, error)
	// AddItem agrega una línea (POST /cart-items).
	AddItem(ctx context.Context, token, productID string, quantity int) error
	// UpdateItem cambia la cantidad de una línea (PUT /cart-items/:id).
	UpdateItem(ctx context.Context, token, itemID string, quantity int) error
	// RemoveItem elimina una línea (DELETE /cart-items/:id).
	RemoveItem(ctx context.Context, token, itemID string) error
	// ClearCart vacía el carrito (DELETE /cart-items/cart/:cartId/clear).
	ClearCart(ctx context.Context, token, cartID string) error
}

// MirrorStore puerto del espejo local persistido del carrito.
// Update debe ejecutar leer-modificar-escribir como paso atómico frente a otros
// Update sobre el mismo visitorID, para no perder líneas si dos "agregar al
// carrito" llegan seguidos.
type MirrorStore interface {
	// Load lee el espejo del visitante. Ausente o corrupto → lista vacía, nunca error.
	Load(visitorID string) []entity.CartItem
	// Update aplica fn sobre el espejo y reescribe la lista completa.
	Update(visitorID string, fn func(items []entity.CartItem) []entity.CartItem) error
}
