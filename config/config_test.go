package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "prod") // skip .env loading
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("NOMINATIM_BASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()

	if cfg.ServerPort != ":5000" {
		t.Errorf("ServerPort = %q, want :5000", cfg.ServerPort)
	}
	if cfg.MongoDB != "revtext" {
		t.Errorf("MongoDB = %q, want revtext", cfg.MongoDB)
	}
	if cfg.NominatimURL != "https://nominatim.openstreetmap.org" {
		t.Errorf("NominatimURL = %q", cfg.NominatimURL)
	}
	if cfg.JWTSecret == "" {
		t.Error("JWTSecret empty, want dev fallback")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("SERVER_PORT", ":8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("KAFKA_BROKER", "localhost:9092")
	t.Setenv("KAFKA_TOPIC", "revtext.audit")

	cfg := LoadConfig()

	if cfg.ServerPort != ":8080" {
		t.Errorf("ServerPort = %q, want :8080", cfg.ServerPort)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.KafkaBroker != "localhost:9092" || cfg.KafkaTopic != "revtext.audit" {
		t.Errorf("kafka = %q/%q", cfg.KafkaBroker, cfg.KafkaTopic)
	}
}
