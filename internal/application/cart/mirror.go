package cart

import (
	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// MergeLine concilia una adición contra el espejo: si ya existe una línea con el
// mismo ProductID incrementa su cantidad, si no agrega una línea nueva con el
// snapshot completo del producto. Cantidades no positivas se ajustan a 1 para
// preservar el invariante "toda línea existe con cantidad ≥ 1".
// Función pura: devuelve la lista resultante sin mutar los argumentos.
func MergeLine(items []entity.CartItem, product entity.Product, quantity int) []entity.CartItem {
	if quantity < 1 {
		quantity = 1
	}
	merged := make([]entity.CartItem, len(items))
	copy(merged, items)

	for i := range merged {
		if merged[i].ProductID == product.ID {
			merged[i].Quantity += quantity
			return merged
		}
	}
	return append(merged, entity.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	})
}
