package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort            string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret    string
	JWTAccessTTL time.Duration

	KafkaHost                 string
	KafkaShipmentChangedTopic string

	SpeechAPIURL  string
	SpeechAPIKey  string
	SpeechTimeout time.Duration

	LogLevel string
	LogDir   string

	DefaultFuelPrice float64

	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

func defaultConfig() Config {
	return Config{
		HTTPPort:                  "8080",
		HTTPReadTimeout:           15 * time.Second,
		HTTPWriteTimeout:          60 * time.Second,
		HTTPShutdownTimeout:       15 * time.Second,
		DBHost:                    "localhost",
		DBPort:                    "5432",
		DBUser:                    "postgres",
		DBName:                    "logistics",
		DBSslMode:                 "disable",
		JWTAccessTTL:              24 * time.Hour,
		KafkaShipmentChangedTopic: "shipment.changed",
		SpeechTimeout:             30 * time.Second,
		LogLevel:                  "info",
		DefaultFuelPrice:          100,
	}
}

// LoadConfig reads the given .env files, when present, and then the process
// environment. Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := defaultConfig()
	var errs []error

	setString(&cfg.HTTPPort, "HTTP_PORT")
	setDuration(&cfg.HTTPReadTimeout, "HTTP_READ_TIMEOUT", &errs)
	setDuration(&cfg.HTTPWriteTimeout, "HTTP_WRITE_TIMEOUT", &errs)
	setDuration(&cfg.HTTPShutdownTimeout, "HTTP_SHUTDOWN_TIMEOUT", &errs)

	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSslMode, "DB_SSLMODE")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	setDuration(&cfg.JWTAccessTTL, "JWT_ACCESS_TTL", &errs)

	setString(&cfg.KafkaHost, "KAFKA_HOST")
	setString(&cfg.KafkaShipmentChangedTopic, "KAFKA_SHIPMENT_CHANGED_TOPIC")

	setString(&cfg.SpeechAPIURL, "SPEECH_API_URL")
	cfg.SpeechAPIKey = strings.TrimSpace(os.Getenv("SPEECH_API_KEY"))
	setDuration(&cfg.SpeechTimeout, "SPEECH_TIMEOUT", &errs)

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	setString(&cfg.LogDir, "LOG_DIR")

	setFloat(&cfg.DefaultFuelPrice, "DEFAULT_FUEL_PRICE", &errs)

	setString(&cfg.BootstrapAdminEmail, "BOOTSTRAP_ADMIN_EMAIL")
	cfg.BootstrapAdminPassword = os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")

	errs = append(errs, cfg.validate()...)
	return cfg, errors.Join(errs...)
}

func (c Config) validate() []error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTAccessTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TTL must be > 0"))
	}
	if c.DefaultFuelPrice <= 0 {
		errs = append(errs, errors.New("DEFAULT_FUEL_PRICE must be > 0"))
	}
	if (c.BootstrapAdminEmail == "") != (c.BootstrapAdminPassword == "") {
		errs = append(errs, errors.New("BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD must be set together"))
	}
	return errs
}

// DSN is the PostgreSQL connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means events are only logged.
func (c Config) KafkaBrokers() []string {
	raw := strings.Split(c.KafkaHost, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func setString(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func setDuration(target *time.Duration, key string, errs *[]error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = d
	}
}

func setFloat(target *float64, key string, errs *[]error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = f
	}
}
