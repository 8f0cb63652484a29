package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	GitHub   GitHubConfig
	Calendar CalendarConfig
	Sync     SyncConfig
	Auth     AuthConfig
	Privacy  PrivacyConfig
}

type ServerConfig struct {
	Addr           string
	Region         string
	AllowedOrigins []string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type GitHubConfig struct {
	Token    string
	Username string
	BaseURL  string
}

type CalendarConfig struct {
	CalendarID      string
	CredentialsJSON string
	KeyFile         string
	BaseURL         string
}

type SyncConfig struct {
	Interval time.Duration
}

type AuthConfig struct {
	AdminID       string
	AdminPassword string
	JWTSecret     string
	JWTAccessTTL  string
}

type PrivacyConfig struct {
	// Logs API에서 IP가 포함된 메시지를 그대로 볼 수 있는 주소들
	AdminIPs []string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Addr:           getenv("LISTEN_ADDR", ":8080"),
			Region:         getenv("REGION", "Edge"),
			AllowedOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		GitHub: GitHubConfig{
			Token:    os.Getenv("GITHUB_TOKEN"),
			Username: getenv("GITHUB_USERNAME", "rushiraj"),
			BaseURL:  getenv("GITHUB_API_URL", "https://api.github.com"),
		},
		Calendar: CalendarConfig{
			CalendarID:      getenv("GOOGLE_CALENDAR_ID", "primary"),
			CredentialsJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
			KeyFile:         getenv("GOOGLE_SERVICE_ACCOUNT_FILE", "certs/service-account.json"),
			BaseURL:         getenv("GOOGLE_CALENDAR_API_URL", "https://www.googleapis.com/calendar/v3"),
		},
		Sync: SyncConfig{
			Interval: getduration("SYNC_INTERVAL", 10*time.Minute),
		},
		Auth: AuthConfig{
			AdminID:       os.Getenv("ADMIN_USERNAME"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			JWTAccessTTL:  getenv("JWT_ACCESS_TTL", "30m"),
		},
		Privacy: PrivacyConfig{
			AdminIPs: splitList(getenv("ADMIN_IPS", "127.0.0.1,::1,192.168.1.3")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
