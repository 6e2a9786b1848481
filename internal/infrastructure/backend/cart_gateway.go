package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/tienda-web/internal/application/cart"
	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// Verificar en tiempo de compilación que CartGateway implementa el puerto.
var _ cart.Gateway = (*CartGateway)(nil)

// CartGateway implementa cart.Gateway sobre /carts y /cart-items.
type CartGateway struct {
	client *Client
}

// NewCartGateway construye el gateway.
func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

// CreateCart llama POST /carts.
func (g *CartGateway) CreateCart(ctx context.Context, token string) (*entity.RemoteCart, error) {
	raw, err := g.client.do(ctx, http.MethodPost, "/carts", token, nil)
	if err != nil {
		return nil, err
	}
	return g.decodeCart(raw)
}

// MyCart llama GET /carts/my-cart.
func (g *CartGateway) MyCart(ctx context.Context, token string) (*entity.RemoteCart, error) {
	raw, err := g.client.do(ctx, http.MethodGet, "/carts/my-cart", token, nil)
	if err != nil {
		return nil, err
	}
	return g.decodeCart(raw)
}

// AddItem llama POST /cart-items.
func (g *CartGateway) AddItem(ctx context.Context, token, productID string, quantity int) error {
	body := dto.AddCartItemRequest{ProductID: productID, Quantity: quantity}
	_, err := g.client.do(ctx, http.MethodPost, "/cart-items", token, body)
	return err
}

// UpdateItem llama PUT /cart-items/:id.
func (g *CartGateway) UpdateItem(ctx context.Context, token, itemID string, quantity int) error {
	body := dto.UpdateCartItemRequest{Quantity: quantity}
	_, err := g.client.do(ctx, http.MethodPut, "/cart-items/"+itemID, token, body)
	return err
}

// RemoveItem llama DELETE /cart-items/:id.
func (g *CartGateway) RemoveItem(ctx context.Context, token, itemID string) error {
	_, err := g.client.do(ctx, http.MethodDelete, "/cart-items/"+itemID, token, nil)
	return err
}

// ClearCart llama DELETE /cart-items/cart/:cartId/clear.
func (g *CartGateway) ClearCart(ctx context.Context, token, cartID string) error {
	_, err := g.client.do(ctx, http.MethodDelete, "/cart-items/cart/"+cartID+"/clear", token, nil)
	return err
}

func (g *CartGateway) decodeCart(raw []byte) (*entity.RemoteCart, error) {
	var remote entity.RemoteCart
	if err := json.Unmarshal(Normalize(raw), &remote); err != nil {
		g.client.log.Warn().Err(err).Msg("payload de carrito no decodificable")
		return nil, nil
	}
	return &remote, nil
}
