package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	BaseURL       string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	CloudinaryURL string
	NominatimURL  string

	GoogleClientID     string
	GitHubClientID     string
	GitHubClientSecret string

	KafkaBroker string
	KafkaTopic  string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		BaseURL:       os.Getenv("BASE_URL"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		NominatimURL:  os.Getenv("NOMINATIM_BASE_URL"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  os.Getenv("KAFKA_TOPIC"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":5000"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "revtext"
	}
	if cfg.NominatimURL == "" {
		cfg.NominatimURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev_secret_change_me"
	}

	return cfg
}
