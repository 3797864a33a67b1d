package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Session  Session
	Admin    Admin
	Env      string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Session struct {
	Secret string
}

// Admin is the bootstrap account ensured at startup.
type Admin struct {
	Email    string
	Password string
	Username string
	FullName string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_FULL_NAME", "System Administrator")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Session.Secret = viper.GetString("SESSION_SECRET")
	config.Admin.Email = viper.GetString("ADMIN_EMAIL")
	config.Admin.Password = viper.GetString("ADMIN_PASSWORD")
	config.Admin.Username = viper.GetString("ADMIN_USERNAME")
	config.Admin.FullName = viper.GetString("ADMIN_FULL_NAME")
	config.Env = viper.GetString("APP_ENV")

	log.Info().Str("port", config.Server.Port).Str("env", config.Env).Msg("Config loaded")
	return &config, nil
}

// Production reports whether secure-cookie enforcement should be on.
func (c *Config) Production() bool {
	return c.Env == "production"
}
