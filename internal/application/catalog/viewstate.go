package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-web/internal/domain/entity"
)

// PageSize tamaño fijo de página del catálogo.
const PageSize = 6

// View es el estado derivado del catálogo para una búsqueda y página dadas:
// lista filtrada, porción visible y metadatos de paginación para la plantilla.
type View struct {
	Term       string
	Filtered   []entity.Product
	Page       int // 1-indexado
	TotalPages int
	Items      []entity.Product // porción de Filtered para Page
	From       int              // índice 1-indexado del primer item visible (0 si vacío)
	To         int              // índice 1-indexado del último item visible
}

// NewView deriva el estado de vista completo. page fuera de rango (≤0 o más allá
// del final de la lista filtrada) se restablece a 1: una página obsoleta nunca
// debe apuntar más allá de una lista recién reducida.
func NewView(products []entity.Product, term string, page int) *View {
	filtered := Filter(products, term)
	totalPages := PageCount(len(filtered))
	if page < 1 || page > totalPages {
		page = 1
	}
	items := Page(filtered, page)

	v := &View{
		Term:       term,
		Filtered:   filtered,
		Page:       page,
		TotalPages: totalPages,
		Items:      items,
	}
	if len(items) > 0 {
		v.From = (page-1)*PageSize + 1
		v.To = v.From + len(items) - 1
	}
	return v
}

// Total cantidad de productos tras el filtro.
func (v *View) Total() int { return len(v.Filtered) }

// HasPrev / HasNext para los controles de paginación.
func (v *View) HasPrev() bool { return v.Page > 1 }
func (v *View) HasNext() bool { return v.Page < v.TotalPages }

// Pages devuelve [1..TotalPages] para renderizar los botones de página.
func (v *View) Pages() []int {
	pages := make([]int, v.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Filter aplica la búsqueda por subcadena, insensible a mayúsculas y acentos,
// sobre nombre, descripción y nombre resuelto de la categoría. Término vacío
// devuelve la lista completa sin tocar (identidad). Lista nil se trata como vacía.
func Filter(products []entity.Product, term string) []entity.Product {
	if products == nil {
		return []entity.Product{}
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return products
	}
	needle := foldText(term)

	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(foldText(p.Name), needle) ||
			strings.Contains(foldText(p.Description), needle) ||
			strings.Contains(foldText(p.Category.DisplayName()), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// PageCount = ceil(total / PageSize). Cero productos → cero páginas.
func PageCount(total int) int {
	return (total + PageSize - 1) / PageSize
}

// Page devuelve la porción [ (page-1)*PageSize, page*PageSize ) de la lista.
// Páginas fuera de rango devuelven lista vacía.
func Page(filtered []entity.Product, page int) []entity.Product {
	if page < 1 {
		return []entity.Product{}
	}
	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return []entity.Product{}
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// foldCase quita marcas diacríticas tras descomponer NFD: "Jamón" y "jamon"
// comparan igual en un catálogo en español.
var foldCase = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldText(s string) string {
	folded, _, err := transform.String(foldCase, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
