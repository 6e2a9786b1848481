package dto

import "github.com/jhoicas/tienda-web/internal/domain/entity"

// LoginRequest credenciales para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest datos para POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

// AuthPayload respuesta del backend al autenticar: token + perfil.
type AuthPayload struct {
	Token string             `json:"token"`
	User  entity.UserProfile `json:"user"`
}

// StoredSession es la entrada de sesión persistida por visitante: el token del
// backend más el perfil devuelto al autenticar.
type StoredSession struct {
	Token string             `json:"token"`
	User  entity.UserProfile `json:"user"`
}

// AuthResult resultado uniforme de login/register hacia las vistas.
// Nunca se propaga un error de Go al handler: las vistas bifurcan sobre Success
// y muestran Error tal cual cuando es falso.
type AuthResult struct {
	Success bool
	Error   string
	Session entity.Session
}

// Failure construye un AuthResult fallido con el mensaje dado.
func Failure(msg string) AuthResult {
	return AuthResult{Success: false, Error: msg}
}
