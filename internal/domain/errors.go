package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrSessionExpired  = errors.New("sesión expirada")
	ErrBackendDown     = errors.New("backend no disponible")
	ErrCartUnavailable = errors.New("carrito remoto no disponible")
)

// RemoteError es un error de transporte o de validación devuelto por el backend,
// con el mensaje legible que la vista puede mostrar en línea.
type RemoteError struct {
	Status  int    // código HTTP
	Code    string // código de error del backend, si lo envió
	Message string // mensaje legible del backend, si lo envió
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend %d", e.Status)
}

// UserMessage devuelve el mensaje mostrable: el del backend si existe, si no el
// texto genérico dado.
func (e *RemoteError) UserMessage(generic string) string {
	if e != nil && e.Message != "" {
		return e.Message
	}
	return generic
}
