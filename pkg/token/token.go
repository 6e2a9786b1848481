package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos de perfil que el backend
// suele embeber en el token de sesión.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Inspect decodifica los claims del token SIN verificar la firma.
// El storefront no posee el secreto de firma: la autoridad es el backend, que
// valida el token en cada petición. Aquí solo se leen expiración y perfil para
// decidir si la sesión local sigue vigente.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: cadena vacía")
	}
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: decodificar claims: %w", err)
	}
	return claims, nil
}

// Expired indica si el token ya venció. Un token sin claim exp se trata como
// vigente: la decisión final la toma el backend al rechazar la petición.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}
