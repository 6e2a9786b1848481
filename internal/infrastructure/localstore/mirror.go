package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tienda-web/internal/application/cart"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// Verificar en tiempo de compilación que MirrorRepository implementa el puerto.
var _ cart.MirrorStore = (*MirrorRepository)(nil)

// MirrorRepository persiste el espejo local del carrito: una entrada por
// visitante con la lista serializada de líneas.
type MirrorRepository struct {
	store *Store
	log   *logger.Logger
}

// NewMirrorRepository construye el repositorio.
func NewMirrorRepository(store *Store, log *logger.Logger) *MirrorRepository {
	return &MirrorRepository{store: store, log: log}
}

// Load lee el espejo del visitante. Entrada ausente, ilegible o corrupta →
// lista vacía; el error de parseo se registra y jamás sube al llamador, porque
// el espejo es un respaldo de mejor esfuerzo, no una fuente de verdad.
func (r *MirrorRepository) Load(visitorID string) []entity.CartItem {
	raw, err := r.store.Read(r.key(visitorID))
	if err != nil {
		r.log.Warn().Err(err).Str("visitor_id", visitorID).Msg("leer espejo del carrito")
		return []entity.CartItem{}
	}
	if len(raw) == 0 {
		return []entity.CartItem{}
	}

	var items []entity.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn().Err(err).Str("visitor_id", visitorID).Msg("espejo del carrito corrupto; se trata como vacío")
		return []entity.CartItem{}
	}
	if items == nil {
		return []entity.CartItem{}
	}
	return items
}

// Update ejecuta leer-modificar-escribir bajo el candado de la clave: lee el
// espejo actual, aplica fn y reescribe la lista completa.
func (r *MirrorRepository) Update(visitorID string, fn func(items []entity.CartItem) []entity.CartItem) error {
	key := r.key(visitorID)
	return r.store.WithLock(key, func() error {
		items := r.Load(visitorID)
		items = fn(items)

		encoded, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("serializar espejo del carrito: %w", err)
		}
		return r.store.Write(key, encoded)
	})
}

func (r *MirrorRepository) key(visitorID string) string {
	return "cart-" + visitorID
}
