package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - настройки сервиса калькулятора
type Config struct {
	HTTPPort        string
	GRPCPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

var envFiles = []string{".env", "../.env", "../../.env"}

// Load читает первый найденный .env и переменные окружения.
// Переменные окружения, заданные явно, .env не перезаписывает.
func Load() (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			log.Printf("Загружен файл конфигурации %s", file)
			break
		}
	}

	requestTimeout, err := durationMs("REQUEST_TIMEOUT_MS", "5000")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := durationMs("SHUTDOWN_TIMEOUT_MS", "10000")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:        getEnvOrDefault("HTTP_PORT", "8000"),
		GRPCPort:        getEnvOrDefault("GRPC_PORT", "50051"),
		RequestTimeout:  requestTimeout,
		ShutdownTimeout: shutdownTimeout,
		AllowedOrigins:  splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT %q: %w", cfg.HTTPPort, err)
	}

	if cfg.GRPCEnabled() {
		if _, err := strconv.Atoi(cfg.GRPCPort); err != nil {
			return nil, fmt.Errorf("invalid GRPC_PORT %q: %w", cfg.GRPCPort, err)
		}
	}

	return cfg, nil
}

// GRPCEnabled - пустой порт или 0 отключают gRPC
func (c *Config) GRPCEnabled() bool {
	return c.GRPCPort != "" && c.GRPCPort != "0"
}

func (c *Config) HTTPAddr() string {
	return ":" + c.HTTPPort
}

func (c *Config) GRPCAddr() string {
	return ":" + c.GRPCPort
}

func durationMs(key, def string) (time.Duration, error) {
	raw := getEnvOrDefault(key, def)
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected positive number of milliseconds", key, raw)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
