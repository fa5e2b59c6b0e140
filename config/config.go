package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort            string
	MetricsPort            string
	Environment            string
	LogLevel               string
	JWTSecret              string
	JWTKid                 string
	KafkaConfig            KafkaConfig
	TracingConfig          TracingConfig
	GeminiConfig           GeminiConfig
	CredentialsFile        string
	RegistrationOTPEnabled bool
	TaskTimeout            time.Duration
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type GeminiConfig struct {
	APIKey       string
	Model        string
	TaglineModel string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTKid:      os.Getenv("JWT_KID"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "storefront-orders"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		GeminiConfig: GeminiConfig{
			APIKey:       os.Getenv("GEMINI_API_KEY"),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			TaglineModel: getEnv("GEMINI_TAGLINE_MODEL", "gemini-2.5-flash"),
		},
		CredentialsFile: getEnv("CREDENTIALS_FILE", ".store-credentials"),
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	otpEnabled, err := strconv.ParseBool(os.Getenv("REGISTRATION_OTP_ENABLED"))
	if err == nil {
		conf.RegistrationOTPEnabled = otpEnabled
	}

	conf.TaskTimeout = 30 * time.Second
	taskTimeout, err := strconv.Atoi(os.Getenv("TASK_TIMEOUT_SECONDS"))
	if err == nil && taskTimeout > 0 {
		conf.TaskTimeout = time.Duration(taskTimeout) * time.Second
	}

	if conf.JWTSecret == "" && conf.Environment != "production" {
		conf.JWTSecret = "development-secret"
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
