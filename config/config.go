package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Session  Session
}

type Server struct {
	Port           string
	RequestTimeout int // seconds, bounds every store call per request
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret string
	TokenTTL  int // hours
}

type Session struct {
	// AllowMultipleAttempts permits more than one UserTest row per (user, test)
	// pair. Retake support when true; a hard uniqueness rule when false.
	AllowMultipleAttempts bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TOKEN_TTL_HOURS", 72)
	viper.SetDefault("ALLOW_MULTIPLE_ATTEMPTS", true)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.RequestTimeout = viper.GetInt("REQUEST_TIMEOUT_SECONDS")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = viper.GetInt("TOKEN_TTL_HOURS")
	config.Session.AllowMultipleAttempts = viper.GetBool("ALLOW_MULTIPLE_ATTEMPTS")

	log.Info().Str("port", config.Server.Port).Str("database", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
