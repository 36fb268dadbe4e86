package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Store backends selectable via STORE_BACKEND.
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable read once at process start; nothing is
// mutated at runtime.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	AdminPIN     string // admin unlock secret; hashed at startup, never logged
	JWTSecret    string // secret used to sign admin tokens
	AccessTTLMin int    // admin token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for hashing the PIN

	StoreBackend string // "memory" or "mysql"
	DBUser       string // database username (mysql backend)
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must(); the database
// block is required only when the mysql backend is selected.
func Load() Config {
	cfg := Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		AdminPIN:     must("ADMIN_PIN"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),
		StoreBackend: strings.ToLower(getenv("STORE_BACKEND", StoreMemory)),
	}
	switch cfg.StoreBackend {
	case StoreMemory:
	case StoreMySQL:
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	default:
		log.Fatalf("unknown STORE_BACKEND: %q (want %q or %q)", cfg.StoreBackend, StoreMemory, StoreMySQL)
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
