package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Bank     BankConfig     `mapstructure:"bank"`
	Session  SessionConfig  `mapstructure:"session"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Referral ReferralConfig `mapstructure:"referral"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"` // debug, release, test
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// UpstreamConfig holds the base URLs of the remote REST services.
type UpstreamConfig struct {
	WalletURL         string        `mapstructure:"wallet_url"`
	ExchangeURL       string        `mapstructure:"exchange_url"`
	TransferURL       string        `mapstructure:"transfer_url"`
	InsuranceURL      string        `mapstructure:"insurance_url"`
	PolicyURL         string        `mapstructure:"policy_url"`
	UserURL           string        `mapstructure:"user_url"`
	ReferralURL       string        `mapstructure:"referral_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	ReferenceCurrency string        `mapstructure:"reference_currency"`
}

// BankConfig holds the partner bank gateway credentials.
type BankConfig struct {
	URL             string `mapstructure:"url"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	TargetAccountID string `mapstructure:"target_account_id"`
}

// Configured reports whether every credential needed for a deposit is present.
func (b BankConfig) Configured() bool {
	return b.URL != "" && b.Username != "" && b.Password != "" && b.TargetAccountID != ""
}

type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type ReferralConfig struct {
	KeyPrefix string `mapstructure:"key_prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CASHOUT_.
// Nested keys use underscore: CASHOUT_UPSTREAM_WALLET_URL, CASHOUT_BANK_USERNAME, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("upstream.wallet_url", "")
	v.SetDefault("upstream.exchange_url", "")
	v.SetDefault("upstream.transfer_url", "")
	v.SetDefault("upstream.insurance_url", "")
	v.SetDefault("upstream.policy_url", "")
	v.SetDefault("upstream.user_url", "")
	v.SetDefault("upstream.referral_url", "")
	v.SetDefault("upstream.timeout", "15s")
	v.SetDefault("upstream.reference_currency", "USD")
	v.SetDefault("bank.url", "https://smuedu-dev.outsystemsenterprise.com/gateway/rest")
	v.SetDefault("bank.username", "")
	v.SetDefault("bank.password", "")
	v.SetDefault("bank.target_account_id", "0000002578")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.expiry", "24h")
	v.SetDefault("session.issuer", "cashout-gateway")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "cashout")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("referral.key_prefix", "cashout:referral:checked:")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// CASHOUT_UPSTREAM_WALLET_URL -> upstream.wallet_url
	v.SetEnvPrefix("CASHOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Upstream.ReferenceCurrency = strings.ToUpper(cfg.Upstream.ReferenceCurrency)

	return &cfg, nil
}

// Validate reports the first setting the service cannot start without.
// Bank credentials are optional: payments fail with a configuration error
// until they are set.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret is required")
	}
	if c.Session.Expiry <= 0 {
		return errors.New("session.expiry must be positive")
	}
	if c.Upstream.Timeout <= 0 {
		return errors.New("upstream.timeout must be positive")
	}
	if len(c.Upstream.ReferenceCurrency) != 3 {
		return fmt.Errorf("upstream.reference_currency %q is not a currency code", c.Upstream.ReferenceCurrency)
	}
	for _, u := range []struct{ key, value string }{
		{"upstream.wallet_url", c.Upstream.WalletURL},
		{"upstream.exchange_url", c.Upstream.ExchangeURL},
		{"upstream.transfer_url", c.Upstream.TransferURL},
		{"upstream.insurance_url", c.Upstream.InsuranceURL},
		{"upstream.policy_url", c.Upstream.PolicyURL},
		{"upstream.user_url", c.Upstream.UserURL},
		{"upstream.referral_url", c.Upstream.ReferralURL},
	} {
		if u.value == "" {
			return fmt.Errorf("%s is required", u.key)
		}
	}
	return nil
}
