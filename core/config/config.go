package config

import (
	"fmt"
	"strings"
	"sync"

	"meetease/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	GoogleAPI GoogleAPIConfig
	Email     EmailConfig
	AWS       AWSConfig
}

var (
	instance *Config
	once     sync.Once
)

// Load reads .env (if present) and environment variables into the config singleton.
func Load() (*Config, error) {
	var err error
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		v.SetDefault("server.host", "0.0.0.0")
		v.SetDefault("server.port", 7070)
		v.SetDefault("database.host", "localhost")
		v.SetDefault("database.port", 5432)
		v.SetDefault("database.user", "postgres")
		v.SetDefault("database.dbname", "meetease")
		v.SetDefault("database.sslmode", constants.DatabaseSSLMode)
		v.SetDefault("redis.addr", "localhost:6379")
		v.SetDefault("jwt.access_ttl_minutes", 60)
		v.SetDefault("jwt.refresh_ttl_minutes", 60*24*7)
		v.SetDefault("email.port", 587)
		v.SetDefault("aws.region", "ap-southeast-1")

		cfg := &Config{
			Server: ServerConfig{
				Host:    v.GetString("server.host"),
				Port:    v.GetInt("server.port"),
				BaseURL: v.GetString("server.base_url"),
			},
			Database: DatabaseConfig{
				Host:     v.GetString("database.host"),
				Port:     v.GetInt("database.port"),
				User:     v.GetString("database.user"),
				Password: v.GetString("database.password"),
				DBName:   v.GetString("database.dbname"),
				SSLMode:  v.GetString("database.sslmode"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("redis.addr"),
				Password: v.GetString("redis.password"),
				DB:       v.GetInt("redis.db"),
			},
			JWT: JWTConfig{
				Secret:            v.GetString("jwt.secret"),
				AccessTTLMinutes:  v.GetInt("jwt.access_ttl_minutes"),
				RefreshTTLMinutes: v.GetInt("jwt.refresh_ttl_minutes"),
			},
			GoogleAPI: GoogleAPIConfig{
				ClientID:     v.GetString("google.client_id"),
				ClientSecret: v.GetString("google.client_secret"),
				RedirectURI:  v.GetString("google.redirect_uri"),
			},
			Email: EmailConfig{
				Host:     v.GetString("email.host"),
				Port:     v.GetInt("email.port"),
				Username: v.GetString("email.username"),
				Password: v.GetString("email.password"),
				From:     v.GetString("email.from"),
			},
			AWS: AWSConfig{
				Region:          v.GetString("aws.region"),
				AccessKeyID:     v.GetString("aws.access_key_id"),
				SecretAccessKey: v.GetString("aws.secret_access_key"),
				Bucket:          v.GetString("aws.bucket"),
			},
		}

		if cfg.JWT.Secret == "" {
			err = fmt.Errorf("JWT_SECRET is required")
			return
		}
		instance = cfg
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// Get returns the loaded config. Panics if Load was never called.
func Get() *Config {
	if instance == nil {
		panic("config: not initialized, call config.Load first")
	}
	return instance
}

// GetSafe returns the config and whether it has been initialized.
func GetSafe() (*Config, bool) {
	return instance, instance != nil
}
