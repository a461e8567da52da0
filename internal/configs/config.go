package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	RedisAddr        string
	RedisPassword    string
	RedisDB          string
	JWTSecret        string
	AdminUsername    string
	ServiceName      string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "3001"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "mathgame"),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		RedisAddr:        getEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvOrDefault("REDIS_PWD", ""),
		RedisDB:          getEnvOrDefault("REDIS_DB", "0"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "supersecret"),
		AdminUsername:    getEnvOrDefault("ADMIN_USERNAME", ""),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "mathgame-service"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
