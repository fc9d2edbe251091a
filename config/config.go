package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	PostgreSQLConfig PostgreSQLConfig
	TracingConfig    TracingConfig
	JWTSecret        string
	AdminConfig      AdminConfig
	OrderConfig      OrderConfig
	UploadDir        string
	FrontendOrigin   string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type TracingConfig struct {
	CollectorHost string
}

type AdminConfig struct {
	Email    string
	Password string
}

type OrderConfig struct {
	// WhatsAppNumber is the shop's number in international format without
	// the leading plus, as wa.me expects it.
	WhatsAppNumber string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		AdminConfig: AdminConfig{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		OrderConfig: OrderConfig{
			WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
		},
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "8080"
	}

	if conf.MetricsPort == "" {
		conf.MetricsPort = "9090"
	}

	if conf.UploadDir == "" {
		conf.UploadDir = "uploads"
	}

	return &conf
}
