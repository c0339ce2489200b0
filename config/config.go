package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret  string
	AdminToken string

	// Server Configuration
	Port    string
	BaseURL string
	Env     string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil && env != "test" {
		return nil, fmt.Errorf("error loading env file %s: %v", envFile, err)
	}

	port := getEnvOrDefault("PORT", "8080")

	return &Config{
		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "booknest"),

		// Security Configuration
		JWTSecret:  getEnvOrDefault("JWT_SECRET", ""),
		AdminToken: getEnvOrDefault("ADMIN_TOKEN", ""),

		// Server Configuration
		Port:    port,
		BaseURL: getEnvOrDefault("BASE_URL", "http://localhost:"+port),
		Env:     env,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
