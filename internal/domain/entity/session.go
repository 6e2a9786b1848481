package entity

import "time"

// UserProfile datos de perfil que el backend devuelve al autenticar.
type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Session es el contexto de usuario compartido por todas las vistas.
// Se reconstruye por petición desde el token persistido; Authenticated es falso
// si no hay token o si ya expiró.
type Session struct {
	Authenticated bool
	Token         string
	User          UserProfile
	ExpiresAt     time.Time
}

// FullName nombre mostrable en la barra de navegación.
func (s Session) FullName() string {
	if s.User.FirstName == "" {
		return s.User.Email
	}
	if s.User.LastName == "" {
		return s.User.FirstName
	}
	return s.User.FirstName + " " + s.User.LastName
}
