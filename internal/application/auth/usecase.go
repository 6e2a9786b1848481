package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/logger"
	"github.com/jhoicas/tienda-web/pkg/token"
)

// Mensajes genéricos cuando el backend no aporta uno propio.
const (
	msgLoginFailed    = "No se pudo iniciar sesión. Verifica tus credenciales."
	msgRegisterFailed = "No se pudo completar el registro. Inténtalo de nuevo."
	msgMissingFields  = "Completa todos los campos."
)

// AuthUseCase casos de uso de sesión: login, registro, logout y consulta del
// estado de autenticación. Login y Register nunca devuelven error de Go: las
// vistas reciben siempre un AuthResult uniforme y bifurcan sobre Success.
type AuthUseCase struct {
	gw    Gateway
	store SessionStore
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(gw Gateway, store SessionStore, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{gw: gw, store: store, log: log}
}

// Login autentica contra el backend y persiste la sesión del visitante.
func (uc *AuthUseCase) Login(ctx context.Context, visitorID, email, password string) dto.AuthResult {
	if email == "" || password == "" {
		return dto.Failure(msgMissingFields)
	}
	payload, err := uc.gw.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("login rechazado")
		return dto.Failure(userMessage(err, msgLoginFailed))
	}
	return uc.establish(visitorID, payload)
}

// Register crea la cuenta en el backend y deja al usuario autenticado.
func (uc *AuthUseCase) Register(ctx context.Context, visitorID, firstName, lastName, email, password string) dto.AuthResult {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return dto.Failure(msgMissingFields)
	}
	payload, err := uc.gw.Register(ctx, dto.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("registro rechazado")
		return dto.Failure(userMessage(err, msgRegisterFailed))
	}
	return uc.establish(visitorID, payload)
}

// Logout elimina la sesión persistida. Un fallo al borrar solo se registra: el
// visitante queda igualmente desautenticado para las vistas.
func (uc *AuthUseCase) Logout(visitorID string) {
	if err := uc.store.Clear(visitorID); err != nil {
		uc.log.Error().Err(err).Str("visitor_id", visitorID).Msg("limpiar sesión persistida")
	}
}

// Current reconstruye la sesión del visitante desde la entrada persistida.
// Sin entrada, entrada ilegible o token vencido → sesión no autenticada; el
// token vencido además se purga.
func (uc *AuthUseCase) Current(visitorID string) entity.Session {
	stored, err := uc.store.Load(visitorID)
	if err != nil {
		uc.log.Warn().Err(err).Str("visitor_id", visitorID).Msg("leer sesión persistida")
		return entity.Session{}
	}
	if stored == nil || stored.Token == "" {
		return entity.Session{}
	}

	claims, err := token.Inspect(stored.Token)
	if err != nil {
		uc.log.Warn().Err(err).Msg("token persistido ilegible; se descarta")
		uc.Logout(visitorID)
		return entity.Session{}
	}
	if claims.Expired(time.Now()) {
		uc.Logout(visitorID)
		return entity.Session{}
	}

	session := entity.Session{
		Authenticated: true,
		Token:         stored.Token,
		User:          stored.User,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session
}

// establish persiste el payload de autenticación y arma el AuthResult exitoso.
func (uc *AuthUseCase) establish(visitorID string, payload *dto.AuthPayload) dto.AuthResult {
	if payload == nil || payload.Token == "" {
		return dto.Failure(msgLoginFailed)
	}
	if err := uc.store.Save(visitorID, dto.StoredSession{Token: payload.Token, User: payload.User}); err != nil {
		// Sin persistencia la sesión no sobrevive a la siguiente petición; este
		// sí es un fallo que el usuario debe ver.
		uc.log.Error().Err(err).Str("visitor_id", visitorID).Msg("persistir sesión")
		return dto.Failure(msgLoginFailed)
	}
	return dto.AuthResult{
		Success: true,
		Session: entity.Session{
			Authenticated: true,
			Token:         payload.Token,
			User:          payload.User,
		},
	}
}

// userMessage extrae el mensaje legible del backend si viene en el error.
func userMessage(err error, generic string) string {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return remote.UserMessage(generic)
	}
	return generic
}
