package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/axanet-clients/internal/timezone"
)

const DefaultDataDir = "axanet_clientes"

type Config struct {
	DataDir          string
	Timezone         string
	CheckEmailDomain bool

	ServerPort      string
	DBUrl           string
	JWTSecret       string
	APIPasswordHash string

	BackupBucket string
	BackupPrefix string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Endpoint   string
}

// Load lê um .env opcional e depois as variáveis de ambiente.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}

	cfg := &Config{
		DataDir:          getEnv("AXANET_DATA_DIR", DefaultDataDir),
		Timezone:         getEnv("AXANET_TIMEZONE", timezone.DefaultTimezone),
		CheckEmailDomain: getBool("AXANET_CHECK_EMAIL", false),

		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		APIPasswordHash: getEnv("API_PASSWORD_HASH", ""),

		BackupBucket: getEnv("BACKUP_BUCKET", ""),
		BackupPrefix: getEnv("BACKUP_PREFIX", "axanet"),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
	}

	if !timezone.IsValid(cfg.Timezone) {
		log.Printf("config: unknown AXANET_TIMEZONE %q, using local time", cfg.Timezone)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "s", "si", "sí":
		return true
	case "0", "false", "no", "n":
		return false
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// AuthEnabled exige segredo e hash; sem os dois a API fica fechada.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.APIPasswordHash != ""
}

func (c *Config) AuditEnabled() bool {
	return c.DBUrl != ""
}

func (c *Config) BackupEnabled() bool {
	return c.BackupBucket != ""
}
