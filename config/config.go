package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración que viene del entorno.
type Config struct {
	Puerto     string
	CORSOrigin string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	IGDBBaseURL     string
	IGDBClientID    string
	IGDBAccessToken string

	JWTSecret string
}

// Cargar lee el .env (si existe) y arma la configuración.
// En Docker las variables ya vienen inyectadas, ahí no se carga el archivo.
func Cargar() Config {
	if os.Getenv("DOCKER_ENV") != "true" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Puerto:     getenv("PORT", "3000"),
		CORSOrigin: getenv("CORS_ORIGIN", "http://localhost:5173"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getenv("DB_SSLMODE", "require"),

		IGDBBaseURL:     getenv("IGDB_BASE_URL", "https://api.igdb.com/v4"),
		IGDBClientID:    os.Getenv("IGDB_CLIENT_ID"),
		IGDBAccessToken: os.Getenv("IGDB_ACCESS_TOKEN"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	return cfg
}

// DSN arma la cadena de conexión a Postgres (Neon usa sslmode=require).
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
