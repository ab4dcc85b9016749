package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode      string
	Port         string
	LogLevel     string
	Database     DatabaseConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Redis        RedisConfig
	Pincode      PincodeConfig
	Mail         MailConfig
	SMS          SMSConfig
	DiscountCron DiscountCronConfig
	Admin        AdminSeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration for admin sessions
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// RedisConfig holds redis configuration. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PincodeConfig holds postal lookup configuration
type PincodeConfig struct {
	APIURL   string
	CacheTTL time.Duration
}

// MailConfig holds SendGrid configuration
type MailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
}

// SMSConfig holds messaging gateway configuration
type SMSConfig struct {
	APIURL   string
	APIKey   string
	SenderID string
}

// DiscountCronConfig holds the expired discount sweep schedule
type DiscountCronConfig struct {
	Spec          string
	RetentionDays int
}

// AdminSeedConfig holds the bootstrap admin account
type AdminSeedConfig struct {
	Username string
	Password string
	Email    string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:      appMode,
		Port:         getEnv("PORT", "3000"),
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel(appMode)),
		Database:     loadDatabaseConfig(appMode),
		JWT:          loadJWTConfig(appMode),
		Cookie:       loadCookieConfig(appMode),
		Redis:        loadRedisConfig(),
		Pincode:      loadPincodeConfig(),
		Mail:         loadMailConfig(),
		SMS:          loadSMSConfig(),
		DiscountCron: loadDiscountCronConfig(),
		Admin:        loadAdminSeedConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

func defaultLogLevel(mode string) string {
	if mode == "prod" {
		return "info"
	}
	return "debug"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "dealerhub"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := modePrefix(mode)

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: getEnvInt("ACCESS_TOKEN_MINUTES", 720),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := modePrefix(mode)

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func loadPincodeConfig() PincodeConfig {
	ttl, err := time.ParseDuration(getEnv("PINCODE_CACHE_TTL", "24h"))
	if err != nil {
		ttl = 24 * time.Hour
	}

	return PincodeConfig{
		APIURL:   strings.TrimRight(getEnv("PINCODE_API_URL", "https://api.postalpincode.in"), "/"),
		CacheTTL: ttl,
	}
}

func loadMailConfig() MailConfig {
	return MailConfig{
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		FromEmail:      getEnv("MAIL_FROM_EMAIL", "no-reply@dealerhub.local"),
		FromName:       getEnv("MAIL_FROM_NAME", "Dealer Hub"),
	}
}

func loadSMSConfig() SMSConfig {
	return SMSConfig{
		APIURL:   getEnv("SMS_API_URL", ""),
		APIKey:   getEnv("SMS_API_KEY", ""),
		SenderID: getEnv("SMS_SENDER_ID", "DLRHUB"),
	}
}

func loadDiscountCronConfig() DiscountCronConfig {
	return DiscountCronConfig{
		Spec:          getEnv("DISCOUNT_SWEEP_SPEC", "0 3 * * *"),
		RetentionDays: getEnvInt("DISCOUNT_RETENTION_DAYS", 30),
	}
}

func loadAdminSeedConfig() AdminSeedConfig {
	return AdminSeedConfig{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", ""),
		Email:    getEnv("ADMIN_EMAIL", "admin@dealerhub.local"),
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://admin.dealerhub.in"
	}
	return origins
}
