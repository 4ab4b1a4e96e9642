package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Source     SourceConfig
	DB         DBConfig
	Cache      CacheConfig
	Redis      RedisConfig
	Projection ProjectionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig contraseña de equipo para abrir sesión.
// Si PasswordHash (bcrypt) está vacío se usa Password en claro y se hashea al arrancar.
type AuthConfig struct {
	PasswordHash string
	Password     string
}

// Tipos de fuente de datos soportados.
const (
	SourceCSV      = "csv"
	SourceSheets   = "sheets"
	SourcePostgres = "postgres"
)

// SourceConfig de dónde se leen las tres tablas (SKUs, entradas, salidas).
type SourceConfig struct {
	Kind          string // csv | sheets | postgres
	CSVDir        string
	CSVCharset    string // utf-8, iso-8859-1, windows-1252
	SpreadsheetID string // hoja publicada (sin credenciales)
	SheetsBaseURL string
	Timeout       time.Duration
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Tipos de caché de tablas.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig caché de las tablas crudas: TTL fijo, invalidación manual.
type CacheConfig struct {
	Kind string
	TTL  time.Duration
	Key  string // clave usada en Redis
}

// RedisConfig conexión a Redis (solo si Cache.Kind = redis).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ProjectionConfig parámetros por defecto del motor de proyección.
type ProjectionConfig struct {
	DefaultDays int
	MaxDays     int
	Workers     int
	SummaryKey  string // id | description
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SOURCE_KIND, CACHE_TTL_SECONDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-command"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventory-command"),
		},
		Auth: AuthConfig{
			PasswordHash: getString(v, "AUTH_TEAM_PASSWORD_HASH", ""),
			Password:     getString(v, "AUTH_TEAM_PASSWORD", ""),
		},
		Source: SourceConfig{
			Kind:          strings.ToLower(getString(v, "SOURCE_KIND", SourceCSV)),
			CSVDir:        getString(v, "SOURCE_CSV_DIR", "./data"),
			CSVCharset:    strings.ToLower(getString(v, "SOURCE_CSV_CHARSET", "utf-8")),
			SpreadsheetID: getString(v, "SHEETS_SPREADSHEET_ID", ""),
			SheetsBaseURL: getString(v, "SHEETS_BASE_URL", "https://docs.google.com/spreadsheets/d"),
			Timeout:       time.Duration(getInt(v, "SOURCE_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory_db"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			Kind: strings.ToLower(getString(v, "CACHE_KIND", CacheMemory)),
			TTL:  time.Duration(getInt(v, "CACHE_TTL_SECONDS", 60)) * time.Second,
			Key:  getString(v, "CACHE_REDIS_KEY", "inventory-command:tables"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Projection: ProjectionConfig{
			DefaultDays: getInt(v, "PROJECTION_DEFAULT_DAYS", 30),
			MaxDays:     getInt(v, "PROJECTION_MAX_DAYS", 365),
			Workers:     getInt(v, "PROJECTION_WORKERS", 1),
			SummaryKey:  strings.ToLower(getString(v, "PROJECTION_SUMMARY_KEY", "id")),
		},
	}
}

// Validate revisa combinaciones inválidas antes de construir dependencias.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceCSV, SourcePostgres:
	case SourceSheets:
		if c.Source.SpreadsheetID == "" {
			return fmt.Errorf("config: SHEETS_SPREADSHEET_ID requerido con SOURCE_KIND=sheets")
		}
	default:
		return fmt.Errorf("config: SOURCE_KIND desconocido %q", c.Source.Kind)
	}
	switch c.Cache.Kind {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: CACHE_KIND desconocido %q", c.Cache.Kind)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: CACHE_TTL_SECONDS debe ser positivo")
	}
	if c.Projection.DefaultDays < 0 || c.Projection.MaxDays < c.Projection.DefaultDays {
		return fmt.Errorf("config: PROJECTION_DEFAULT_DAYS debe estar entre 0 y PROJECTION_MAX_DAYS")
	}
	if c.Projection.SummaryKey != "id" && c.Projection.SummaryKey != "description" {
		return fmt.Errorf("config: PROJECTION_SUMMARY_KEY debe ser id o description")
	}
	return nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
