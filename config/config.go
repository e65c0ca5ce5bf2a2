package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Auth struct {
		// Empty secret disables bearer auth on the webhook.
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"auth"`
	Redis struct {
		// Empty host disables the credit card list cache.
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	// PROFILE_DB_NAME and friends override the file values.
	viper.AutomaticEnv()
	viper.BindEnv("database.name", "PROFILE_DB_NAME")
	viper.BindEnv("database.host", "PROFILE_DB_HOST")
	viper.BindEnv("database.port", "PROFILE_DB_PORT")
	viper.BindEnv("database.user", "PROFILE_DB_USER")
	viper.BindEnv("database.password", "PROFILE_DB_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
