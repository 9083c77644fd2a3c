package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrNoSecret = errors.New("jwt secret is required (set AUTHD_JWT_SECRET or jwt.secret)")

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type JWT struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type SeedAccount struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Role     string `mapstructure:"role"`
}

type Config struct {
	HTTP       HTTP
	DB         DB
	JWT        JWT
	BcryptCost int
	DevMode    bool
	Seed       []SeedAccount
}

// Load reads the optional yaml file at path and lets AUTHD_* environment
// variables override every key. The signing secret has no default: boot
// fails without one unless dev_mode is on, in which case an ephemeral
// random secret is generated.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AUTHD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "authd.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "authd")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "authd")
	v.SetDefault("jwt.ttl", "1h")
	v.SetDefault("bcrypt_cost", 0)
	v.SetDefault("dev_mode", false)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		BcryptCost: v.GetInt("bcrypt_cost"),
		DevMode:    v.GetBool("dev_mode"),
	}

	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.TTL = v.GetDuration("jwt.ttl")
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = time.Hour
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		if !cfg.DevMode {
			return nil, ErrNoSecret
		}
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		cfg.JWT.Secret = hex.EncodeToString(buf)
	}

	if err := v.UnmarshalKey("seed", &cfg.Seed); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}
	if cfg.DevMode && len(cfg.Seed) == 0 {
		cfg.Seed = []SeedAccount{{Username: "admin", Password: "admin123", Role: "admin"}}
	}
	return cfg, nil
}
