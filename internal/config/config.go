package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	JWTKey    string
	JWTExpiry time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	StripeAPIKey string

	// RecaptchaVerifyURL is overridable so tests can point it at a local server.
	RecaptchaVerifyURL string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users      string
	Affiliates string
	Roles      string
	Settings   string
	Promos     string
	Packages   string
	Jobs       string
	UserJobs   string
	Orders     string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:      getEnv("DYNAMO_TABLE_USERS", "users"),
			Affiliates: getEnv("DYNAMO_TABLE_AFFILIATES", "affiliates"),
			Roles:      getEnv("DYNAMO_TABLE_ROLES", "roles"),
			Settings:   getEnv("DYNAMO_TABLE_SETTINGS", "settings"),
			Promos:     getEnv("DYNAMO_TABLE_PROMOS", "promos"),
			Packages:   getEnv("DYNAMO_TABLE_PACKAGES", "packages"),
			Jobs:       getEnv("DYNAMO_TABLE_JOBS", "jobs"),
			UserJobs:   getEnv("DYNAMO_TABLE_USERJOBS", "userjobs"),
			Orders:     getEnv("DYNAMO_TABLE_ORDERS", "orders"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "jobboard-resumes"),

		JWTKey:    getEnv("JWT_KEY", ""),
		JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		StripeAPIKey: getEnv("STRIPE_API_KEY", ""),

		RecaptchaVerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
