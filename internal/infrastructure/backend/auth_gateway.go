package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/dto"
)

// Verificar en tiempo de compilación que AuthGateway implementa el puerto.
var _ auth.Gateway = (*AuthGateway)(nil)

// AuthGateway implementa auth.Gateway sobre los endpoints /auth.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login llama POST /auth/login y decodifica token + perfil.
func (g *AuthGateway) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthPayload, error) {
	return g.authenticate(ctx, "/auth/login", in)
}

// Register llama POST /auth/register y decodifica token + perfil.
func (g *AuthGateway) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthPayload, error) {
	return g.authenticate(ctx, "/auth/register", in)
}

func (g *AuthGateway) authenticate(ctx context.Context, path string, body interface{}) (*dto.AuthPayload, error) {
	raw, err := g.client.do(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}

	var payload dto.AuthPayload
	if err := json.Unmarshal(Normalize(raw), &payload); err != nil {
		return nil, fmt.Errorf("backend: decodificar respuesta de %s: %w", path, err)
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("backend: respuesta de %s sin token", path)
	}
	return &payload, nil
}
