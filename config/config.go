package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	Gemini      GeminiConfig
	Categories  CategoriesConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret   string
	Duration time.Duration
}

type GoogleOAuthConfig struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// CategoriesConfig permite sobrescrever a lista de categorias padrão por
// implantação. O formato é "Nome:TIPO" separado por vírgula; vazio usa a
// lista embutida do domínio.
type CategoriesConfig struct {
	Defaults []DefaultCategory
}

type DefaultCategory struct {
	Name string
	Type string
}

func Load() (*Config, error) {
	dbPort := envInt("DB_PORT", 5432)

	cfg := &Config{
		App: AppConfig{
			Environment: envString("APP_ENV", "development"),
			LogLevel:    envString("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: envString("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:            envString("DB_HOST", "localhost"),
			Port:            dbPort,
			User:            envString("DB_USER", "postgres"),
			Password:        envString("DB_PASSWORD", ""),
			DBName:          envString("DB_NAME", "confin"),
			SSLMode:         envString("DB_SSLMODE", "disable"),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		JWT: JWTConfig{
			Secret:   envString("JWT_SECRET", ""),
			Duration: envDuration("JWT_DURATION", 24*time.Hour),
		},
		GoogleOAuth: GoogleOAuthConfig{
			Enabled:      envBool("GOOGLE_OAUTH_ENABLED", false),
			ClientID:     envString("GOOGLE_OAUTH_CLIENT_ID", ""),
			ClientSecret: envString("GOOGLE_OAUTH_CLIENT_SECRET", ""),
			RedirectURL:  envString("GOOGLE_OAUTH_REDIRECT_URL", ""),
		},
		Gemini: GeminiConfig{
			APIKey:  envString("GEMINI_API_KEY", ""),
			Model:   envString("GEMINI_MODEL", "gemini-3-flash-preview"),
			BaseURL: envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Timeout: envDuration("GEMINI_TIMEOUT", 15*time.Second),
		},
		Categories: CategoriesConfig{
			Defaults: parseDefaultCategories(os.Getenv("DEFAULT_CATEGORIES")),
		},
	}

	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET é obrigatório")
	}

	return cfg, nil
}

func parseDefaultCategories(raw string) []DefaultCategory {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []DefaultCategory
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		out = append(out, DefaultCategory{Name: parts[0], Type: strings.ToUpper(parts[1])})
	}
	return out
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
