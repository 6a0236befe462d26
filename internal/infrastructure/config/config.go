package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendDynamoDB = "dynamodb"
)

// Config is the runtime configuration, read from the environment.
//
// A .env file in the working directory is loaded by main before Load runs.
type Config struct {
	HTTPPort       int
	StorageBackend string

	// Capability toggles replacing the per-variant route files.
	AuthRequired  bool
	EmailEnabled  bool
	AllowedOrigin string

	Auth     AuthConfig
	Postgres PostgresConfig
	DynamoDB DynamoDBConfig
	SMTP     SMTPConfig

	LogLevel  string
	LogFormat string
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
	Username       string
	Password       string
	PasswordHash   string
}

type PostgresConfig struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type DynamoDBConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	Endpoint           string
	GiftItemsTable     string
	RevokedTokensTable string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Sender    string
	Password  string
	Recipient string
	Timeout   time.Duration
	// Mock logs messages instead of dialing the SMTP server.
	Mock bool
}

// Load reads every setting from the environment, applying defaults.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		HTTPPort:       getenvInt("HTTP_PORT", 8080, &errs),
		StorageBackend: strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageBackendPostgres)),
		AuthRequired:   getenvBool("AUTH_REQUIRED", true, &errs),
		EmailEnabled:   getenvBool("EMAIL_NOTIFICATIONS_ENABLED", false, &errs),
		AllowedOrigin:  getenvDefault("ORIGINS", "*"),
		Auth: AuthConfig{
			JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
			AccessTokenTTL: getenvDuration("ACCESS_TOKEN_TTL", 24*time.Hour, &errs),
			Username:       os.Getenv("SECRET_USER"),
			Password:       os.Getenv("SECRET_PASS"),
			PasswordHash:   os.Getenv("SECRET_PASS_HASH"),
		},
		Postgres: PostgresConfig{
			Host:            getenvDefault("DB_HOST", "localhost"),
			Port:            getenvDefault("DB_PORT", "5432"),
			Name:            getenvDefault("DB_NAME", "lista_de_presentes"),
			User:            getenvDefault("DB_USER", "postgres"),
			Password:        os.Getenv("DB_PASSWORD"),
			SSLMode:         getenvDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 10, &errs),
			MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 5, &errs),
			ConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute, &errs),
		},
		DynamoDB: DynamoDBConfig{
			Region:             getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:        getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:    getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:           os.Getenv("DYNAMODB_ENDPOINT"),
			GiftItemsTable:     getenvDefault("GIFT_ITEMS_TABLE", "lista_de_presentes"),
			RevokedTokensTable: getenvDefault("REVOKED_TOKENS_TABLE", "revoked_tokens"),
		},
		SMTP: SMTPConfig{
			Host:      getenvDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:      getenvInt("SMTP_PORT", 465, &errs),
			Sender:    os.Getenv("EMAIL_SENDER"),
			Password:  os.Getenv("EMAIL_PASSWORD"),
			Recipient: os.Getenv("EMAIL_RECIPIENT"),
			Timeout:   getenvDuration("SMTP_TIMEOUT", 15*time.Second, &errs),
			Mock:      getenvBool("EMAIL_MOCK", false, &errs),
		},
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "text"),
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if c.Auth.Username == "" {
		errs = append(errs, errors.New("SECRET_USER is required"))
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		errs = append(errs, errors.New("SECRET_PASS or SECRET_PASS_HASH is required"))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	switch c.StorageBackend {
	case StorageBackendPostgres, StorageBackendDynamoDB:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend))
	}
	if c.EmailEnabled && !c.SMTP.Mock && (c.SMTP.Sender == "" || c.SMTP.Password == "" || c.SMTP.Recipient == "") {
		errs = append(errs, errors.New("EMAIL_SENDER, EMAIL_PASSWORD and EMAIL_RECIPIENT are required when email notifications are enabled"))
	}
	return errors.Join(errs...)
}

// DSN builds the pgx connection string.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.Name,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int, errs *[]error) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func getenvBool(key string, def bool, errs *[]error) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	*errs = append(*errs, fmt.Errorf("%s: invalid boolean %q", key, v))
	return def
}

func getenvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
