package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Catalog CatalogConfig
	Utage   UtageConfig
	App     AppConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// CatalogConfig points at the JSON catalog files. The files are re-read on
// every request; a missing or broken file degrades to an empty catalog.
type CatalogConfig struct {
	ProductsFile  string
	TemplatesFile string
}

type UtageConfig struct {
	APIKey             string
	BaseURL            string
	ScenarioIDProspect string
	ScenarioIDCustomer string
	ScenarioIDDormant  string
	Timeout            time.Duration
}

type AppConfig struct {
	BaseURL   string // public URL used to build download links
	StaticDir string // directory served under /static (bonus PDFs)
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3003,http://localhost")),
		},
		Catalog: CatalogConfig{
			ProductsFile:  getEnv("PRODUCTS_FILE", "data/products/products.json"),
			TemplatesFile: getEnv("TEMPLATES_FILE", "data/templates/templates.json"),
		},
		Utage: UtageConfig{
			APIKey:             getEnv("UTAGE_API_KEY", ""),
			BaseURL:            getEnv("UTAGE_API_URL", "https://api.utage-system.com"),
			ScenarioIDProspect: getEnv("UTAGE_SCENARIO_ID_PROSPECT", ""),
			ScenarioIDCustomer: getEnv("UTAGE_SCENARIO_ID_CUSTOMER", ""),
			ScenarioIDDormant:  getEnv("UTAGE_SCENARIO_ID_DORMANT", ""),
			Timeout:            parseDuration(getEnv("UTAGE_TIMEOUT", "10s")),
		},
		App: AppConfig{
			BaseURL:   getEnv("BASE_URL", "http://localhost:8080"),
			StaticDir: getEnv("STATIC_DIR", "static"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 10s", s)
		return 10 * time.Second
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
