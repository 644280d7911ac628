package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug | release
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"` // DATABASE_URL, dipakai kalau diisi
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Port     string `mapstructure:"port"`
	LogMode  bool   `mapstructure:"log_mode"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

var (
	cfg     *Config
	cfgOnce sync.Once
)

// Load membaca config.yaml (opsional) lalu override dari environment,
// mis. TOKO_DATABASE_URL, TOKO_JWT_SECRET, PORT.
func Load() (*Config, error) {
	var err error
	cfgOnce.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		v.SetDefault("server.port", "8080")
		v.SetDefault("server.mode", "debug")
		v.SetDefault("database.host", "localhost")
		v.SetDefault("database.user", "postgres")
		v.SetDefault("database.password", "postgres")
		v.SetDefault("database.name", "toko_inventory")
		v.SetDefault("database.port", "5432")
		v.SetDefault("database.log_mode", false)
		v.SetDefault("jwt.secret", "rahasia-super-kuat")
		v.SetDefault("jwt.expire_hours", 72)
		v.SetDefault("seed.admin_username", "admin")
		v.SetDefault("seed.admin_password", "admin123")

		v.SetEnvPrefix("TOKO")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if readErr := v.ReadInConfig(); readErr != nil {
			if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
				err = fmt.Errorf("baca config: %w", readErr)
				return
			}
		}

		// Render/Heroku style env tanpa prefix
		_ = v.BindEnv("database.url", "TOKO_DATABASE_URL", "DATABASE_URL")
		_ = v.BindEnv("server.port", "TOKO_SERVER_PORT", "PORT")

		c := &Config{}
		if umErr := v.Unmarshal(c); umErr != nil {
			err = fmt.Errorf("unmarshal config: %w", umErr)
			return
		}
		cfg = c
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
