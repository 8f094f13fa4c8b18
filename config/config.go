package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv     string
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	// Kredensial layanan eksternal (estimasi jarak, cache, arsip audit).
	MapsAPIKey string
	RedisAddr  string
	MongoURI   string
	MongoDB    string
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Warn(".env file not found, relying on environment variables")
		}
		cfg = &Config{
			AppEnv:     os.Getenv("APP_ENV"),
			Port:       os.Getenv("PORT"),
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBHost:     os.Getenv("DB_HOST"),
			DBPort:     os.Getenv("DB_PORT"),
			DBName:     os.Getenv("DB_NAME"),
			JWTSecret:  os.Getenv("JWT_SECRET"),
			MapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
			RedisAddr:  os.Getenv("REDIS_ADDR"),
			MongoURI:   os.Getenv("MONGO_URI"),
			MongoDB:    os.Getenv("MONGO_DB"),
		}
		if cfg.Port == "" {
			cfg.Port = "8080"
		}
	})
	return cfg
}
