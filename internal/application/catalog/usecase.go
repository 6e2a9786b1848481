package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// CatalogUseCase casos de uso del catálogo: listado con búsqueda y paginación,
// detalle y creación de productos.
type CatalogUseCase struct {
	gw  Gateway
	log *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(gw Gateway, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{gw: gw, log: log}
}

// Browse obtiene el catálogo y deriva el estado de vista para term y page.
// Un fallo de red no rompe la vista: se registra y se devuelve el estado vacío
// ("no hay productos"), igual que con un catálogo legítimamente sin productos.
func (uc *CatalogUseCase) Browse(ctx context.Context, token, term string, page int) *View {
	products, err := uc.gw.List(ctx, token)
	if err != nil {
		uc.log.Error().Err(err).Msg("obtener catálogo")
		products = nil
	}
	return NewView(products, term, page)
}

// Detail obtiene un producto por ID.
func (uc *CatalogUseCase) Detail(ctx context.Context, token, id string) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.gw.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.ID == "" {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Create valida el formulario y crea el producto. Los errores se devuelven para
// mostrarse en línea en el formulario; el precio y el descuento no pueden ser
// negativos y el descuento no puede superar el precio.
func (uc *CatalogUseCase) Create(ctx context.Context, token string, in dto.CreateProductRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" || in.Description == "" || in.CategoryID == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Discount.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	if in.Discount.GreaterThan(in.Price) {
		return domain.ErrInvalidInput
	}
	return uc.gw.Create(ctx, token, in)
}
