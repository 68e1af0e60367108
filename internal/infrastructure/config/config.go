package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do arquivo .env
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: viper.GetString("JWT_ACCESS_EXPIRY"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// AccessExpiryDuration retorna a expiração do token de acesso como Duration.
// Valores inválidos ou vazios caem no padrão de 8 horas (um turno de trabalho).
func (j *JWTConfig) AccessExpiryDuration() time.Duration {
	d, err := time.ParseDuration(j.AccessExpiry)
	if err != nil || d <= 0 {
		return 8 * time.Hour
	}
	return d
}
