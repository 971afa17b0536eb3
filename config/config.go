package config

import "os"

const (
	BackendONNX  = "onnx"
	BackendVader = "vader"
)

// Config holds the runtime settings the dashboard reads from the
// environment. Everything has a usable default for local development.
type Config struct {
	ServerAddr   string
	ModelDir     string
	Backend      string
	TemplatesDir string
}

func FromEnv() *Config {
	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
		ModelDir:     getEnv("MODEL_DIR", "./models"),
		Backend:      getEnv("CLASSIFIER_BACKEND", BackendONNX),
		TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
