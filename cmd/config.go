package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DB       DBConfig
	Auth     AuthConfig
	Biteship BiteshipConfig
	Midtrans MidtransConfig
	Fonnte   FonnteConfig
	Telegram TelegramConfig
	Jobs     JobsConfig
}

type AppConfig struct {
	Name string
	Env  string
	// Location is the business timezone. Dashboard day and week boundaries follow it.
	Location *time.Location
}

type HTTPConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SslMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN is the libpq keyword/value connection string for the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type AuthConfig struct {
	JWTSecret string
}

type BiteshipConfig struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

type MidtransConfig struct {
	ServerKey    string
	IsProduction bool
	SnapURL      string
	APIURL       string
	SessionTTL   time.Duration
	Timeout      time.Duration
	MaxRetries   uint64
}

type FonnteConfig struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

// TelegramConfig is optional; an empty token disables the ops mirror.
type TelegramConfig struct {
	Token  string
	ChatID int64
}

func (c TelegramConfig) Enabled() bool {
	return c.Token != ""
}

type JobsConfig struct {
	DispatchSchedule   string
	DispatchBatchSize  int
	ReconcileSchedule  string
	ReconcileOlderThan time.Duration
	ReconcileBatchSize int
	ReconcileTimeout   time.Duration
}

// LoadConfig reads the process environment. Variables from envFile are
// loaded first when the file exists; they never override variables that are
// already set.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	r := &envReader{}
	cfg := Config{
		App: AppConfig{
			Name: r.stringVar("APP_NAME", "laundry"),
			Env:  r.stringVar("APP_ENV", "production"),
		},
		HTTP: HTTPConfig{
			Port:            r.stringVar("HTTP_PORT", "8080"),
			ShutdownTimeout: r.durationVar("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{
			Host:         r.stringVar("DB_HOST", "localhost"),
			Port:         r.stringVar("DB_PORT", "5432"),
			User:         r.requiredVar("DB_USER"),
			Password:     r.stringVar("DB_PASSWORD", ""),
			Name:         r.requiredVar("DB_NAME"),
			SslMode:      r.stringVar("DB_SSLMODE", "disable"),
			MaxOpenConns: r.intVar("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns: r.intVar("DB_MAX_IDLE_CONNS", 5),
		},
		Auth: AuthConfig{
			JWTSecret: r.requiredVar("JWT_SECRET"),
		},
		Biteship: BiteshipConfig{
			URL:        r.stringVar("BITESHIP_URL", "https://api.biteship.com"),
			APIKey:     r.stringVar("BITESHIP_API_KEY", ""),
			Timeout:    r.durationVar("BITESHIP_TIMEOUT", 15*time.Second),
			MaxRetries: r.uintVar("BITESHIP_MAX_RETRIES", 2),
		},
		Midtrans: MidtransConfig{
			ServerKey:    r.stringVar("MIDTRANS_SERVER_KEY", ""),
			IsProduction: r.boolVar("MIDTRANS_IS_PRODUCTION", false),
			SnapURL:      r.stringVar("MIDTRANS_SNAP_URL", ""),
			APIURL:       r.stringVar("MIDTRANS_API_URL", ""),
			SessionTTL:   r.durationVar("MIDTRANS_SESSION_TTL", 24*time.Hour),
			Timeout:      r.durationVar("MIDTRANS_TIMEOUT", 15*time.Second),
			MaxRetries:   r.uintVar("MIDTRANS_MAX_RETRIES", 2),
		},
		Fonnte: FonnteConfig{
			URL:        r.stringVar("FONNTE_URL", ""),
			APIKey:     r.stringVar("FONNTE_API_KEY", ""),
			Timeout:    r.durationVar("FONNTE_TIMEOUT", 10*time.Second),
			MaxRetries: r.uintVar("FONNTE_MAX_RETRIES", 0),
		},
		Telegram: TelegramConfig{
			Token:  r.stringVar("TELEGRAM_BOT_TOKEN", ""),
			ChatID: r.int64Var("TELEGRAM_OPS_CHAT_ID", 0),
		},
		Jobs: JobsConfig{
			DispatchSchedule:   r.stringVar("JOBS_DISPATCH_SCHEDULE", "@every 10s"),
			DispatchBatchSize:  r.intVar("JOBS_DISPATCH_BATCH_SIZE", 50),
			ReconcileSchedule:  r.stringVar("JOBS_RECONCILE_SCHEDULE", "@every 5m"),
			ReconcileOlderThan: r.durationVar("JOBS_RECONCILE_OLDER_THAN", 15*time.Minute),
			ReconcileBatchSize: r.intVar("JOBS_RECONCILE_BATCH_SIZE", 50),
			ReconcileTimeout:   r.durationVar("JOBS_RECONCILE_TIMEOUT", 2*time.Minute),
		},
	}

	tz := r.stringVar("APP_TIMEZONE", "Asia/Jakarta")
	location, err := time.LoadLocation(tz)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause("APP_TIMEZONE", err))
	}
	cfg.App.Location = location

	if cfg.Telegram.Enabled() && cfg.Telegram.ChatID == 0 {
		r.fail(errs.NewValueIsRequiredError("TELEGRAM_OPS_CHAT_ID"))
	}

	if err = errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envReader collects every malformed or missing variable instead of stopping at the first.
type envReader struct {
	errs []error
}

func (r *envReader) fail(err error) {
	r.errs = append(r.errs, err)
}

func (r *envReader) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) stringVar(key, def string) string {
	if v, ok := r.lookup(key); ok {
		return v
	}
	return def
}

func (r *envReader) requiredVar(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		r.fail(errs.NewValueIsRequiredError(key))
	}
	return v
}

func (r *envReader) intVar(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return n
}

func (r *envReader) int64Var(key string, def int64) int64 {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return n
}

func (r *envReader) uintVar(key string, def uint64) uint64 {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return n
}

func (r *envReader) boolVar(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return b
}

func (r *envReader) durationVar(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return d
}
