package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Session SessionConfig
	AI      AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP local de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del API REST de StockSync (colaborador externo).
type BackendConfig struct {
	BaseURL        string // ej. https://localhost:7232/api
	TimeoutSeconds int    // timeout de transporte por llamada
}

// Timeout devuelve el timeout de transporte como duración.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig configuración de la sesión local (token + perfil persistidos en disco).
// MaxRetries y RetryDelayMs acotan la espera del token tras el login: la vista puede
// montarse antes de que el token quede escrito y reintenta la lectura un número fijo de veces.
type SessionConfig struct {
	Dir              string // directorio del archivo de sesión; vacío = os.UserConfigDir
	MaxRetries       int
	RetryDelayMs     int
	AlertPollMinutes int // intervalo del badge de alertas de stock
}

// RetryDelay devuelve la espera entre reintentos de lectura del token.
func (c SessionConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// AlertPollInterval devuelve el intervalo de refresco del badge de alertas.
func (c SessionConfig) AlertPollInterval() time.Duration {
	return time.Duration(c.AlertPollMinutes) * time.Minute
}

// AIConfig configuración del proveedor de IA para la predicción de stock.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, TOKEN_MAX_RETRIES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stocksync-console"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 4310),
		},
		Backend: BackendConfig{
			BaseURL:        getString(v, "BACKEND_BASE_URL", "https://localhost:7232/api"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			Dir:              getString(v, "SESSION_DIR", ""),
			MaxRetries:       getInt(v, "TOKEN_MAX_RETRIES", 3),
			RetryDelayMs:     getInt(v, "TOKEN_RETRY_DELAY_MS", 500),
			AlertPollMinutes: getInt(v, "ALERT_POLL_MINUTES", 5),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
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
