package config

import (
	"fmt"

	"github.com/infenixDeveloper/artegallera-backend/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Database mysql.Config `mapstructure:"database"`
	Redis    Redis        `mapstructure:"redis"`
	JWT      JWT          `mapstructure:"jwt"`
	Chat     Chat         `mapstructure:"chat"`
	Uploads  Uploads      `mapstructure:"uploads"`
	Metrics  Metrics      `mapstructure:"metrics"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWT struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type Chat struct {
	SocketPort      string `mapstructure:"socket_port"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

type Uploads struct {
	Dir string `mapstructure:"dir"`
}

type Metrics struct {
	Port string `mapstructure:"port"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
