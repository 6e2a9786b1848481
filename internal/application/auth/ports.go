package auth

import (
	"context"

	"github.com/jhoicas/tienda-web/internal/application/dto"
)

// Gateway puerto de salida hacia el servicio de autenticación del backend.
type Gateway interface {
	// Login envía credenciales (POST /auth/login) y devuelve token + perfil.
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthPayload, error)
	// Register crea la cuenta (POST /auth/register) y devuelve token + perfil.
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthPayload, error)
}

// SessionStore persistencia local de la sesión por visitante (una entrada por clave).
type SessionStore interface {
	// Load lee la sesión persistida; (nil, nil) si no existe.
	Load(visitorID string) (*dto.StoredSession, error)
	// Save reescribe la entrada completa.
	Save(visitorID string, s dto.StoredSession) error
	// Clear elimina la entrada (logout o token vencido).
	Clear(visitorID string) error
}
