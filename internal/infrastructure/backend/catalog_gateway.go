package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/tienda-web/internal/application/catalog"
	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// Verificar en tiempo de compilación que CatalogGateway implementa el puerto.
var _ catalog.Gateway = (*CatalogGateway)(nil)

// CatalogGateway implementa catalog.Gateway sobre los endpoints /products.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway construye el gateway.
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

// List obtiene el catálogo completo. Un payload que no sea lista (forma
// inesperada tras normalizar) se coacciona a lista vacía, no a error.
func (g *CatalogGateway) List(ctx context.Context, token string) ([]entity.Product, error) {
	raw, err := g.client.do(ctx, http.MethodGet, "/products", token, nil)
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := json.Unmarshal(Normalize(raw), &products); err != nil {
		g.client.log.Warn().Err(err).Msg("payload de /products no es lista; se trata como catálogo vacío")
		return []entity.Product{}, nil
	}
	return products, nil
}

// Get obtiene el detalle de un producto.
func (g *CatalogGateway) Get(ctx context.Context, token, id string) (*entity.Product, error) {
	raw, err := g.client.do(ctx, http.MethodGet, "/products/"+id, token, nil)
	if err != nil {
		return nil, err
	}

	var product entity.Product
	if err := json.Unmarshal(Normalize(raw), &product); err != nil {
		g.client.log.Warn().Err(err).Str("id", id).Msg("payload de /products/:id no decodificable")
		return nil, nil
	}
	return &product, nil
}

// Create crea un producto (ruta protegida).
func (g *CatalogGateway) Create(ctx context.Context, token string, in dto.CreateProductRequest) error {
	_, err := g.client.do(ctx, http.MethodPost, "/products", token, in)
	return err
}
