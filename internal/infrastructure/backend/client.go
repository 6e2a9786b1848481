package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/tienda-web/internal/application/dto"
	"github.com/jhoicas/tienda-web/internal/domain"
	"github.com/jhoicas/tienda-web/pkg/config"
	"github.com/jhoicas/tienda-web/pkg/logger"
)

// Client adaptador HTTP hacia el backend REST de comercio.
// Usa net/http de la stdlib; adjunta el Bearer token cuando la llamada lo trae
// y convierte las respuestas no-2xx en *domain.RemoteError con el mensaje del
// backend para mostrarlo en línea.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con el timeout de red configurado.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do ejecuta la petición y devuelve el cuerpo crudo de una respuesta 2xx.
// body nil → petición sin cuerpo. token vacío → sin header Authorization.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta de %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.remoteError(method, path, resp.StatusCode, raw)
	}
	return raw, nil
}

// remoteError decodifica el cuerpo de error del backend. Acepta tanto
// {code, message} como {message} plano; si el cuerpo no es decodificable el
// RemoteError queda solo con el status.
func (c *Client) remoteError(method, path string, status int, raw []byte) error {
	remote := &domain.RemoteError{Status: status}

	var body dto.ErrorResponse
	if err := json.Unmarshal(Normalize(raw), &body); err == nil {
		remote.Code = body.Code
		remote.Message = body.Message
	}

	c.log.Debug().
		Int("status", status).
		Str("method", method).
		Str("path", path).
		Str("message", remote.Message).
		Msg("respuesta de error del backend")
	return remote
}
