package config

import (
	"os"
	"strconv"
	"strings"
)

// Config собирает все настройки сервиса из окружения один раз при старте
// и передаётся компонентам явно, без повторных чтений env в коде
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Services ServicesConfig
}

type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8084)
}

type MongoDBConfig struct {
	URI      string // URI подключения к MongoDB
	Database string // Имя базы данных
}

type KafkaConfig struct {
	Brokers []string // Список брокеров Kafka (формат: host:port)
	Topic   string   // Топик для событий жизненного цикла отзывов
}

type JWTConfig struct {
	Secret             string // Секретный ключ для проверки JWT токенов
	PrincipleAttribute string // Имя claim с идентификатором пользователя
	ResourceID         string // OAuth2 client id, под которым лежат роли в resource_access
}

type ServicesConfig struct {
	UserAPIURI  string // Базовый URI User API
	OfferAPIURI string // Базовый URI Offer API
	TimeoutSec  int    // Таймаут HTTP клиента для внешних вызовов
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8084"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "reviews_service"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "review_events"),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
			PrincipleAttribute: getEnv("PRINCIPLE_ATTRIBUTE_NAME", "sub"),
			ResourceID:         getEnv("RESOURCE_ID", "reviews-api"),
		},
		Services: ServicesConfig{
			UserAPIURI:  getEnv("USER_API_URI", "http://localhost:8081/api/v1/user"),
			OfferAPIURI: getEnv("OFFER_API_URI", "http://localhost:8082/api/v1/offer"),
			TimeoutSec:  getEnvInt("HTTP_CLIENT_TIMEOUT_SEC", 10),
		},
	}, nil
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
