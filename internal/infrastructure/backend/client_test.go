package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func clientFor(t *testing.T, handler http.HandlerFunc) (*backend.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := backend.NewClient(config.BackendConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, logger.Nop())
	return client, srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CatalogGateway — normalización aplicada idéntica en lista y detalle
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogGateway_ListNormalizaLasTresFormas(t *testing.T) {
	bodies := []string{
		`{"data":{"data":[{"id":"1","name":"Phone"},{"id":"2","name":"Laptop"}]}}`,
		`{"data":[{"id":"1","name":"Phone"},{"id":"2","name":"Laptop"}]}`,
		`[{"id":"1","name":"Phone"},{"id":"2","name":"Laptop"}]`,
	}
	for _, body := range bodies {
		body := body
		client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})

		products, err := backend.NewCatalogGateway(client).List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, products, 2, "cuerpo %s", body)
		assert.Equal(t, "Laptop", products[1].Name)
	}
}

// Payload que no es lista tras normalizar → catálogo vacío, no error.
func TestCatalogGateway_PayloadNoListaSeCoacciona(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":"sin productos"}`))
	})

	products, err := backend.NewCatalogGateway(client).List(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

// El detalle decodifica la categoría en cualquiera de sus variantes.
func TestCatalogGateway_GetResuelveCategoria(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"7","name":"Laptop","price":"3500","category":{"id":"c1","name":"PCs"}}}`))
	})

	product, err := backend.NewCatalogGateway(client).Get(context.Background(), "", "7")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "PCs", product.Category.DisplayName())
	assert.Equal(t, "3500", product.Price.String())
}

// El Bearer token viaja solo cuando la llamada lo trae.
func TestClient_AdjuntaBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	gw := backend.NewCatalogGateway(client)

	_, err := gw.List(context.Background(), "un-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer un-token", gotAuth)

	_, err = gw.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de errores remotos
// ──────────────────────────────────────────────────────────────────────────────

// Una respuesta no-2xx se convierte en *domain.RemoteError con el mensaje del
// backend para mostrarlo en línea.
func TestClient_ErrorRemotoConMensaje(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	})

	_, err := backend.NewAuthGateway(client).Login(context.Background(), dto.LoginRequest{Email: "a@b.co", Password: "x"})
	require.Error(t, err)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
	assert.Equal(t, "credenciales inválidas", remote.Message)
	assert.Equal(t, "credenciales inválidas", remote.UserMessage("genérico"))
}

// Cuerpo de error no decodificable → RemoteError solo con el status y mensaje genérico.
func TestClient_ErrorRemotoSinCuerpo(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	})

	_, err := backend.NewCatalogGateway(client).List(context.Background(), "")
	require.Error(t, err)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.Status)
	assert.Equal(t, "genérico", remote.UserMessage("genérico"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthGateway
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthGateway_LoginDecodificaTokenYPerfil(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ana@correo.co", in.Email)

		_, _ = w.Write([]byte(`{"data":{"token":"tok-1","user":{"id":"u1","firstName":"Ana","lastName":"Gómez","email":"ana@correo.co"}}}`))
	})

	payload, err := backend.NewAuthGateway(client).Login(context.Background(), dto.LoginRequest{Email: "ana@correo.co", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", payload.Token)
	assert.Equal(t, "Ana", payload.User.FirstName)
}

func TestAuthGateway_RespuestaSinTokenEsError(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	_, err := backend.NewAuthGateway(client).Login(context.Background(), dto.LoginRequest{Email: "a@b.co", Password: "x"})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CartGateway
// ──────────────────────────────────────────────────────────────────────────────

func TestCartGateway_Endpoints(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotBody, _ = json.Marshal(decodeBody(r))
		_, _ = w.Write([]byte(`{"data":{"id":"cart-1","items":[]}}`))
	})
	gw := backend.NewCartGateway(client)
	ctx := context.Background()

	require.NoError(t, gw.AddItem(ctx, "tok", "prod-9", 2))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/cart-items", gotPath)
	assert.JSONEq(t, `{"productId":"prod-9","quantity":2}`, string(gotBody))

	require.NoError(t, gw.UpdateItem(ctx, "tok", "item-1", 5))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/cart-items/item-1", gotPath)

	require.NoError(t, gw.RemoveItem(ctx, "tok", "item-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart-items/item-1", gotPath)

	require.NoError(t, gw.ClearCart(ctx, "tok", "cart-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart-items/cart/cart-1/clear", gotPath)

	remote, err := gw.MyCart(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", remote.ID)
}

func decodeBody(r *http.Request) map[string]interface{} {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}
