package cart

import (
	"context"

	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// CartUseCase casos de uso del carrito: adición optimista con espejo local y
// operaciones sobre el carrito remoto autoritativo.
//
// El espejo local y el carrito remoto pueden divergir: el espejo solo crece con
// adiciones locales y nunca se reconcilia desde el servidor. Es una limitación
// aceptada del modelo, no un defecto a corregir en silencio.
type CartUseCase struct {
	gw     Gateway
	mirror MirrorStore
	log    *logger.Logger
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(gw Gateway, mirror MirrorStore, log *logger.Logger) *CartUseCase {
	return &CartUseCase{gw: gw, mirror: mirror, log: log}
}

// Add agrega un producto al carrito: primero el intento remoto, después —
// incondicionalmente, con éxito o sin él — la conciliación del espejo local.
// El fallo remoto no se muestra al usuario: el espejo queda como registro
// durable de la intención y solo se deja constancia en el log. El fallo de la
// escritura local tampoco aborta el flujo: el intento remoto ya determinó el
// resultado que el usuario percibe.
func (uc *CartUseCase) Add(ctx context.Context, token, visitorID string, product entity.Product, quantity int) error {
	if product.ID == "" {
		return domain.ErrInvalidInput
	}
	if quantity < 1 {
		quantity = 1
	}

	if err := uc.gw.AddItem(ctx, token, product.ID, quantity); err != nil {
		uc.log.Warn().Err(err).
			Str("product_id", product.ID).
			Msg("agregar al carrito remoto falló; el espejo local queda como respaldo")
	}

	if err := uc.mirror.Update(visitorID, func(items []entity.CartItem) []entity.CartItem {
		return MergeLine(items, product, quantity)
	}); err != nil {
		uc.log.Error().Err(err).
			Str("visitor_id", visitorID).
			Msg("escribir espejo local del carrito")
	}
	return nil
}

// Local devuelve el contenido del espejo local del visitante.
func (uc *CartUseCase) Local(visitorID string) []entity.CartItem {
	return uc.mirror.Load(visitorID)
}

// Remote obtiene el carrito autoritativo del backend; si el usuario aún no
// tiene carrito, lo crea.
func (uc *CartUseCase) Remote(ctx context.Context, token string) (*entity.RemoteCart, error) {
	remote, err := uc.gw.MyCart(ctx, token)
	if err == nil && remote != nil && remote.ID != "" {
		return remote, nil
	}
	if err != nil {
		uc.log.Warn().Err(err).Msg("obtener carrito remoto; se intenta crear uno")
	}
	return uc.gw.CreateCart(ctx, token)
}

// UpdateQuantity cambia la cantidad de una línea remota.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, token, itemID string, quantity int) error {
	if itemID == "" || quantity < 1 {
		return domain.ErrInvalidInput
	}
	return uc.gw.UpdateItem(ctx, token, itemID, quantity)
}

// Remove elimina una línea remota.
func (uc *CartUseCase) Remove(ctx context.Context, token, itemID string) error {
	if itemID == "" {
		return domain.ErrInvalidInput
	}
	return uc.gw.RemoveItem(ctx, token, itemID)
}

// Clear vacía el carrito remoto: resuelve el cartId vía my-cart y después llama
// al endpoint de limpieza.
func (uc *CartUseCase) Clear(ctx context.Context, token string) error {
	remote, err := uc.gw.MyCart(ctx, token)
	if err != nil {
		return err
	}
	if remote == nil || remote.ID == "" {
		return domain.ErrCartUnavailable
	}
	return uc.gw.ClearCart(ctx, token, remote.ID)
}
