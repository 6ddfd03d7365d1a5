package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Admin   AdminConfig
	Storage StorageConfig
	Redis   RedisConfig
	MongoDB MongoDBConfig
	MinIO   MinIOConfig
	Remote  RemoteConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AdminConfig is the static credential pair gating the dashboard APIs.
type AdminConfig struct {
	Username string
	Password string
}

// StorageConfig selects the storage backend at startup.
// Backend is one of: file, remote, redis, mongo, minio.
type StorageConfig struct {
	Backend string
	DataDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// RemoteConfig points at the hosted key-value config service.
// ReadURL serves item lookups; APIURL accepts authenticated upserts.
type RemoteConfig struct {
	ReadURL string
	APIURL  string
	StoreID string
	Token   string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_DATA_DIR", "data")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("MINIO_BUCKET", "devfolio")
	viper.SetDefault("REMOTE_CONFIG_READ_URL", "https://config.devfolio.dev")
	viper.SetDefault("REMOTE_CONFIG_API_URL", "https://api.devfolio.dev")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			Backend: viper.GetString("STORAGE_BACKEND"),
			DataDir: viper.GetString("STORAGE_DATA_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetString("MINIO_USE_SSL") == "true",
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
		Remote: RemoteConfig{
			ReadURL: viper.GetString("REMOTE_CONFIG_READ_URL"),
			APIURL:  viper.GetString("REMOTE_CONFIG_API_URL"),
			StoreID: viper.GetString("REMOTE_CONFIG_STORE_ID"),
			Token:   os.Getenv("REMOTE_CONFIG_TOKEN"),
		},
	}

	// Basic validation
	if cfg.Server.Environment == "production" && cfg.Admin.Password == "admin123" {
		log.Println("WARNING: ADMIN_PASSWORD is the default value; set a secure value in production")
	}

	return cfg, nil
}
