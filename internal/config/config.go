package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

// DefaultMaxAttachmentBytes is the chat send path attachment cap (5 MiB).
const DefaultMaxAttachmentBytes = 5 << 20

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB holds the GridFS bucket used for attachments
	MongoDB MongoDBConfig `json:"mongodb"`

	// Kafka carries push events between chat nodes
	Kafka KafkaConfig `json:"kafka"`

	Chat ChatConfig `json:"chat"`

	Auth AuthConfig `json:"auth"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host             string `json:"host"`
	ChatServicePort  string `json:"chat_service_port"` // gRPC
	HTTPPort         string `json:"http_port"`         // websocket, metrics, health
	MediaServicePort string `json:"media_service_port"`
	MediaBaseURL     string `json:"media_base_url"`
	ReadTimeout      int    `json:"read_timeout"`
	WriteTimeout     int    `json:"write_timeout"`
	Environment      string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
}

type KafkaConfig struct {
	Brokers []string `json:"brokers"` // empty disables the relay
	Topic   string   `json:"topic"`
	GroupID string   `json:"group_id"`
}

// Enabled reports whether push events go through Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// ChatConfig tunes the messaging core
type ChatConfig struct {
	MaxAttachmentBytes int64  `json:"max_attachment_bytes"`
	ReadWorkers        int    `json:"read_workers"`
	ReadQueueSize      int    `json:"read_queue_size"`
	ReadTimeout        int    `json:"read_timeout"` // Seconds
	HistoryLimit       int    `json:"history_limit"`
	SubscriberBuffer   int    `json:"subscriber_buffer"`
	DraftDBPath        string `json:"draft_db_path"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level"` // debug, info, warn, error
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		glog.V(1).Infof("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:             getEnv("SERVER_HOST", "0.0.0.0"),
			ChatServicePort:  getEnv("CHAT_SERVICE_PORT", "7003"),
			HTTPPort:         getEnv("CHAT_HTTP_PORT", "7103"),
			MediaServicePort: getEnv("MEDIA_SERVER_PORT", "8080"),
			ReadTimeout:      getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:     getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:      getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "gomarket"),
			Password:     getEnv("MYSQL_PASSWORD", "gomarket123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "gomarket"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", "admin"),
			Password: getEnv("MONGO_PASSWORD", "admin123"),
			Database: getEnv("MONGO_DATABASE", "gomarket"),
			Bucket:   getEnv("MONGO_BUCKET", "chat_attachments"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "chat-events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "chat-svc"),
		},
		Chat: ChatConfig{
			MaxAttachmentBytes: int64(getEnvAsInt("CHAT_MAX_ATTACHMENT_BYTES", DefaultMaxAttachmentBytes)),
			ReadWorkers:        getEnvAsInt("CHAT_READ_WORKERS", 4),
			ReadQueueSize:      getEnvAsInt("CHAT_READ_QUEUE_SIZE", 256),
			ReadTimeout:        getEnvAsInt("CHAT_READ_TIMEOUT", 5),
			HistoryLimit:       getEnvAsInt("CHAT_HISTORY_LIMIT", 500),
			SubscriberBuffer:   getEnvAsInt("CHAT_SUBSCRIBER_BUFFER", 64),
			DraftDBPath:        getEnv("CHAT_DRAFT_DB", "drafts.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	cfg.Server.MediaBaseURL = getEnv("MEDIA_BASE_URL",
		fmt.Sprintf("http://localhost:%s/media", cfg.Server.MediaServicePort))

	return cfg
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" || cfg.MongoDB.Password == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
		cfg.MongoDB.Database,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		glog.Warningf("config: %s=%q is not an integer, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
