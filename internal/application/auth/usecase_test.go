package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-web/internal/application/auth"
	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/domain/entity"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuthGateway struct {
	payload *dto.AuthPayload
	err     error
}

func (g *fakeAuthGateway) Login(_ context.Context, _ dto.LoginRequest) (*dto.AuthPayload, error) {
	return g.payload, g.err
}

func (g *fakeAuthGateway) Register(_ context.Context, _ dto.RegisterRequest) (*dto.AuthPayload, error) {
	return g.payload, g.err
}

type memSessionStore struct {
	entries map[string]dto.StoredSession
	saveErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{entries: make(map[string]dto.StoredSession)}
}

func (s *memSessionStore) Load(visitorID string) (*dto.StoredSession, error) {
	stored, ok := s.entries[visitorID]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (s *memSessionStore) Save(visitorID string, stored dto.StoredSession) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.entries[visitorID] = stored
	return nil
}

func (s *memSessionStore) Clear(visitorID string) error {
	delete(s.entries, visitorID)
	return nil
}

// signedToken arma un JWT de prueba con la expiración dada. La firma usa un
// secreto arbitrario: el caso de uso solo decodifica claims, no la verifica.
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := tok.SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)
	return signed
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Register
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoPersisteLaSesion(t *testing.T) {
	store := newMemSessionStore()
	gw := &fakeAuthGateway{payload: &dto.AuthPayload{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  entity.UserProfile{ID: "u-1", FirstName: "Ana", Email: "ana@correo.co"},
	}}
	uc := auth.NewAuthUseCase(gw, store, logger.Nop())

	result := uc.Login(context.Background(), "visitante-1", "ana@correo.co", "clave123")

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.True(t, result.Session.Authenticated)
	assert.Equal(t, "Ana", result.Session.User.FirstName)

	stored, err := store.Load("visitante-1")
	require.NoError(t, err)
	require.NotNil(t, stored, "la sesión debe quedar persistida para la siguiente petición")
	assert.Equal(t, gw.payload.Token, stored.Token)
}

func TestLogin_CamposVaciosNoLlamanAlBackend(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, newMemSessionStore(), logger.Nop())

	result := uc.Login(context.Background(), "visitante-1", "", "clave123")

	assert.False(t, result.Success)
	assert.Equal(t, "Completa todos los campos.", result.Error)
}

// El fallo de red o de credenciales llega a la vista como AuthResult uniforme,
// jamás como error de Go.
func TestLogin_FalloRemotoDevuelveMensajeGenerico(t *testing.T) {
	gw := &fakeAuthGateway{err: assert.AnError}
	uc := auth.NewAuthUseCase(gw, newMemSessionStore(), logger.Nop())

	result := uc.Login(context.Background(), "visitante-1", "ana@correo.co", "clave-mala")

	assert.False(t, result.Success)
	assert.Equal(t, "No se pudo iniciar sesión. Verifica tus credenciales.", result.Error)
}

// Si el backend manda un mensaje legible, ese mensaje gana sobre el genérico.
func TestLogin_MensajeDelBackendTienePrioridad(t *testing.T) {
	gw := &fakeAuthGateway{err: &domain.RemoteError{
		Status:  401,
		Code:    "INVALID_CREDENTIALS",
		Message: "Credenciales inválidas",
	}}
	uc := auth.NewAuthUseCase(gw, newMemSessionStore(), logger.Nop())

	result := uc.Login(context.Background(), "visitante-1", "ana@correo.co", "clave-mala")

	assert.False(t, result.Success)
	assert.Equal(t, "Credenciales inválidas", result.Error)
}

func TestLogin_FalloAlPersistirSeReportaComoFallo(t *testing.T) {
	store := newMemSessionStore()
	store.saveErr = assert.AnError
	gw := &fakeAuthGateway{payload: &dto.AuthPayload{Token: signedToken(t, time.Now().Add(time.Hour))}}
	uc := auth.NewAuthUseCase(gw, store, logger.Nop())

	result := uc.Login(context.Background(), "visitante-1", "ana@correo.co", "clave123")
	assert.False(t, result.Success)
}

func TestRegister_ExitosoDejaAutenticado(t *testing.T) {
	store := newMemSessionStore()
	gw := &fakeAuthGateway{payload: &dto.AuthPayload{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  entity.UserProfile{ID: "u-2", FirstName: "Luis", LastName: "Rojas"},
	}}
	uc := auth.NewAuthUseCase(gw, store, logger.Nop())

	result := uc.Register(context.Background(), "visitante-1", "Luis", "Rojas", "luis@correo.co", "clave123")

	require.True(t, result.Success)
	assert.Equal(t, "Luis Rojas", result.Session.FullName())
}

func TestRegister_CamposIncompletos(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, newMemSessionStore(), logger.Nop())

	result := uc.Register(context.Background(), "visitante-1", "Luis", "", "luis@correo.co", "clave123")

	assert.False(t, result.Success)
	assert.Equal(t, "Completa todos los campos.", result.Error)
}

// Payload sin token equivale a un fallo aunque el backend respondiera 200.
func TestLogin_PayloadSinTokenEsFallo(t *testing.T) {
	gw := &fakeAuthGateway{payload: &dto.AuthPayload{Token: ""}}
	uc := auth.NewAuthUseCase(gw, newMemSessionStore(), logger.Nop())

	result := uc.Login(context.Background(), "visitante-1", "ana@correo.co", "clave123")
	assert.False(t, result.Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Current / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrent_SinSesionPersistida(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, newMemSessionStore(), logger.Nop())

	session := uc.Current("visitante-1")
	assert.False(t, session.Authenticated)
	assert.Empty(t, session.Token)
}

func TestCurrent_ReconstruyeLaSesionVigente(t *testing.T) {
	store := newMemSessionStore()
	expira := time.Now().Add(2 * time.Hour)
	require.NoError(t, store.Save("visitante-1", dto.StoredSession{
		Token: signedToken(t, expira),
		User:  entity.UserProfile{ID: "u-1", FirstName: "Ana"},
	}))
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, store, logger.Nop())

	session := uc.Current("visitante-1")

	require.True(t, session.Authenticated)
	assert.Equal(t, "Ana", session.User.FirstName)
	assert.WithinDuration(t, expira, session.ExpiresAt, time.Second)
}

// Token vencido: sesión no autenticada y entrada purgada del almacén.
func TestCurrent_TokenVencidoPurgaLaSesion(t *testing.T) {
	store := newMemSessionStore()
	require.NoError(t, store.Save("visitante-1", dto.StoredSession{
		Token: signedToken(t, time.Now().Add(-time.Hour)),
	}))
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, store, logger.Nop())

	session := uc.Current("visitante-1")

	assert.False(t, session.Authenticated)
	stored, err := store.Load("visitante-1")
	require.NoError(t, err)
	assert.Nil(t, stored, "el token vencido debe eliminarse del almacén")
}

func TestCurrent_TokenIlegibleSeDescarta(t *testing.T) {
	store := newMemSessionStore()
	require.NoError(t, store.Save("visitante-1", dto.StoredSession{Token: "esto-no-es-un-jwt"}))
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, store, logger.Nop())

	session := uc.Current("visitante-1")

	assert.False(t, session.Authenticated)
	stored, err := store.Load("visitante-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestLogout_EliminaLaSesion(t *testing.T) {
	store := newMemSessionStore()
	require.NoError(t, store.Save("visitante-1", dto.StoredSession{
		Token: signedToken(t, time.Now().Add(time.Hour)),
	}))
	uc := auth.NewAuthUseCase(&fakeAuthGateway{}, store, logger.Nop())

	uc.Logout("visitante-1")

	session := uc.Current("visitante-1")
	assert.False(t, session.Authenticated)
}
