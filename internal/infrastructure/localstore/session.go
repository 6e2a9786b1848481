package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/dto"
)

// Verificar en tiempo de compilación que SessionRepository implementa el puerto.
var _ auth.SessionStore = (*SessionRepository)(nil)

// SessionRepository persiste la sesión por visitante: una entrada con el token
// del backend y el perfil devuelto al autenticar.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository construye el repositorio.
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Load lee la sesión persistida; (nil, nil) si no existe.
func (r *SessionRepository) Load(visitorID string) (*dto.StoredSession, error) {
	raw, err := r.store.Read(r.key(visitorID))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var stored dto.StoredSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("sesión persistida corrupta: %w", err)
	}
	return &stored, nil
}

// Save reescribe la entrada completa.
func (r *SessionRepository) Save(visitorID string, s dto.StoredSession) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	return r.store.Write(r.key(visitorID), encoded)
}

// Clear elimina la entrada.
func (r *SessionRepository) Clear(visitorID string) error {
	return r.store.Delete(r.key(visitorID))
}

func (r *SessionRepository) key(visitorID string) string {
	return "session-" + visitorID
}
