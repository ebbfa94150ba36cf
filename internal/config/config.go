package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App        `yaml:"app"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Workflow   Workflow   `yaml:"workflow"`
	Events     Events     `yaml:"events"`
	Migrations Migrations `yaml:"migrations"`
}

type App struct {
	Port      string `yaml:"port" env:"APP_PORT" env-default:"8080"`
	LogLevel  string `yaml:"log_level" env:"APP_LOG_LEVEL" env-default:"debug"`
	LogFormat string `yaml:"log_format" env:"APP_LOG_FORMAT" env-default:"text"`
}

type Database struct {
	Driver          string        `yaml:"driver" env:"POSTGRES_DRIVER" env-default:"postgres"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST"`
	Port            string        `yaml:"port" env:"POSTGRES_PORT"`
	User            string        `yaml:"user" env:"POSTGRES_USER"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB"`
	Schema          string        `yaml:"schema" env:"POSTGRES_SCHEMA" env-default:"public"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	SSLMode         string        `yaml:"ssl_mode" env:"SSL_MODE" env-default:"disable"`
	TxRetries       int           `yaml:"tx_retries" env:"DB_TX_RETRIES" env-default:"3"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	Issuer    string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"journal-review"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"24h"`
}

type Workflow struct {
	OpTimeout             time.Duration `yaml:"op_timeout" env:"WORKFLOW_OP_TIMEOUT" env-default:"5s"`
	ProtectTerminalStates bool          `yaml:"protect_terminal_states" env:"WORKFLOW_PROTECT_TERMINAL" env-default:"false"`
	Locale                string        `yaml:"locale" env:"WORKFLOW_LOCALE" env-default:"zh-CN"`
}

type Events struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"journal.workflow"`
}

type Migrations struct {
	Skip bool `yaml:"skip" env:"MIGRATIONS_SKIP"`
}

// DSN renders the lib/pq connection string. The tenant schema is applied via
// search_path so every statement resolves tables inside it.
func (d Database) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + d.Port,
		"user=" + d.User,
		"dbname=" + d.DBName,
		"password=" + d.Password,
		"sslmode=" + d.SSLMode,
	}
	if d.Schema != "" {
		parts = append(parts, "search_path="+d.Schema)
	}
	return strings.Join(parts, " ")
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "memory" {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return cfg, nil
}

func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if _, err := os.Stat(configPath); err != nil {
		log.Printf("config file %s not found, reading env only", configPath)
		configPath = ""
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}
