package catalog

import (
	"context"

	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// Gateway puerto de salida hacia el catálogo del backend REST.
// token puede ser vacío en rutas públicas; la implementación lo adjunta como
// Bearer cuando está presente. Para tests se inyecta un mock.
type Gateway interface {
	// List obtiene el catálogo completo (GET /products), ya normalizado.
	List(ctx context.Context, token string) ([]entity.Product, error)
	// Get obtiene un producto por ID (GET /products/:id), ya normalizado.
	Get(ctx context.Context, token string, id string) (*entity.Product, error)
	// Create crea un producto (POST /products), ruta protegida.
	Create(ctx context.Context, token string, in dto.CreateProductRequest) error
}
