package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Admin struct {
	Email string
	Senha string
}

type Config struct {
	Server Server
	DB     DB
	JWT    JWT
	Admin  Admin
}

// Load reads the yaml config at path. The JWT secret has no default: a
// missing secret is a load error, not a silent fallback.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "frota")
	v.SetDefault("db.path", "frota.db")
	v.SetDefault("jwt.issuer", "frota-api")
	v.SetDefault("jwt.exp_min", 120)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		JWT: JWT{
			Secret: v.GetString("jwt.secret"),
			Issuer: v.GetString("jwt.issuer"),
			ExpMin: v.GetInt("jwt.exp_min"),
		},
		Admin: Admin{Email: v.GetString("admin.email"), Senha: v.GetString("admin.senha")},
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret must be set")
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 120
	}
	return cfg, nil
}
