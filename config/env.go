package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// devPasetoKey hanya dipakai di luar production jika PASETO_SECRET_KEY kosong.
const devPasetoKey = "techstore-admin-development-key!"

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port            string
	Env             string
	StoreDriver     string
	StorePath       string
	StoreKey        string
	MongoMode       string
	MongoURI        string
	MongoDatabase   string
	PasetoSecretKey []byte
	CloudinaryURL   string
	CORSOrigins     []string
	AuthRequired    bool
	SeedGenerated   int
	SeedValue       int64
	LogLevel        string
	LogFile         string
}

// IsProduction melaporkan apakah aplikasi berjalan dengan ENVIRONMENT=production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load memuat konfigurasi dari file .env (jika ada) atau environment variables.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv membangun konfigurasi hanya dari environment proses.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", "bolt")),
		StorePath:     getEnv("STORE_PATH", "data/catalog.db"),
		StoreKey:      getEnv("STORE_KEY", "allProducts"),
		MongoMode:     getEnv("MONGO_MODE", "local"),
		MongoDatabase: getEnv("MONGO_DATABASE", "catalog"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		AuthRequired:  cast.ToBool(getEnv("AUTH_REQUIRED", "true")),
	}

	switch cfg.StoreDriver {
	case "bolt", "mongo", "memory":
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	seedGenerated, err := cast.ToIntE(getEnv("SEED_GENERATED", "0"))
	if err != nil || seedGenerated < 0 {
		return nil, fmt.Errorf("SEED_GENERATED must be a non-negative integer")
	}
	cfg.SeedGenerated = seedGenerated

	seedValue, err := cast.ToInt64E(getEnv("SEED_VALUE", "1"))
	if err != nil {
		return nil, fmt.Errorf("SEED_VALUE must be an integer: %w", err)
	}
	cfg.SeedValue = seedValue

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	// Atur URI MongoDB berdasarkan mode
	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" && cfg.StoreDriver == "mongo" {
			return nil, fmt.Errorf("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/catalog")
	}

	key := getEnv("PASETO_SECRET_KEY", "")
	if key == "" && !cfg.IsProduction() {
		log.Println("PASETO_SECRET_KEY not set, using the development key")
		key = devPasetoKey
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET_KEY must be 32 characters long")
	}
	cfg.PasetoSecretKey = []byte(key)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
