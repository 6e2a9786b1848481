package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del storefront (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Session SessionConfig
	Store   StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP que sirve la tienda.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend REST de comercio.
type BackendConfig struct {
	BaseURL string        // ej. https://api.invorya.com/api
	Timeout time.Duration // timeout de red por petición
}

// SessionConfig cookie de visitante que identifica el estado local (sesión y espejo).
type SessionConfig struct {
	VisitorCookie string // cookie con el UUID que identifica el estado local del visitante
	CookieSecure  bool   // true en producción (HTTPS)
}

// StoreConfig almacenamiento local en disco (espejo del carrito).
type StoreConfig struct {
	Dir string // directorio de los archivos del espejo; se crea si no existe
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Env:  env,
			Name: getString(v, "APP_NAME", "invorya-tienda"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://localhost:8080/api"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			VisitorCookie: getString(v, "SESSION_VISITOR_COOKIE", "tienda_visitor"),
			CookieSecure:  env == "production",
		},
		Store: StoreConfig{
			Dir: getString(v, "STORE_DIR", "./data"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL no puede ser vacío")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
