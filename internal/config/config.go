package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	MongoDB     MongoDBConfig
	Session     SessionConfig
	Upload      UploadConfig
	Admin       AdminConfig
	Mail        MailConfig
	Payment     PaymentConfig
	PageSize    int
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	Secret   string
	Lifetime time.Duration
}

// UploadConfig holds resume upload configuration
type UploadConfig struct {
	Dir               string
	MaxSize           int64
	AllowedExtensions []string
}

// AdminConfig holds the bootstrap admin account credentials
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

// MailConfig holds SMTP credentials. Carried in the config surface but not
// used by the core workflow.
type MailConfig struct {
	Server   string
	Port     int
	UseTLS   bool
	Username string
	Password string
}

// PaymentConfig holds payment provider credentials (hackathon fees). Not used
// by the core workflow.
type PaymentConfig struct {
	PublicKey string
	SecretKey string
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads configuration from environment variables and an optional config file
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()
	bindEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional, environment variables are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// The session lifetime defaults by profile: 7 days in development, 1 day
	// in production. An explicit SESSION_LIFETIME or config file value wins.
	if config.Session.Lifetime == 0 {
		if config.IsProduction() {
			config.Session.Lifetime = 24 * time.Hour
		} else {
			config.Session.Lifetime = 7 * 24 * time.Hour
		}
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("Environment", "development")
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedOrigins", []string{"http://localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "career_portal")
	viper.SetDefault("Upload.Dir", "uploads")
	viper.SetDefault("Upload.MaxSize", 16*1024*1024) // 16MB
	viper.SetDefault("Upload.AllowedExtensions", []string{".pdf", ".doc", ".docx"})
	viper.SetDefault("Admin.Username", "admin")
	viper.SetDefault("Admin.Email", "admin@careerportal.com")
	viper.SetDefault("Mail.Server", "smtp.gmail.com")
	viper.SetDefault("Mail.Port", 587)
	viper.SetDefault("Mail.UseTLS", true)
	viper.SetDefault("PageSize", 12)
}

func bindEnv() {
	viper.BindEnv("Environment", "APP_ENV")
	viper.BindEnv("LogLevel", "LOG_LEVEL")
	viper.BindEnv("Server.Port", "PORT")
	viper.BindEnv("MongoDB.URI", "MONGODB_URI")
	viper.BindEnv("MongoDB.Database", "MONGODB_DATABASE")
	viper.BindEnv("Session.Secret", "SESSION_SECRET")
	viper.BindEnv("Session.Lifetime", "SESSION_LIFETIME")
	viper.BindEnv("Upload.Dir", "UPLOAD_DIR")
	viper.BindEnv("Upload.MaxSize", "MAX_UPLOAD_SIZE")
	viper.BindEnv("Admin.Username", "ADMIN_USERNAME")
	viper.BindEnv("Admin.Email", "ADMIN_EMAIL")
	viper.BindEnv("Admin.Password", "ADMIN_PASSWORD")
	viper.BindEnv("Mail.Server", "MAIL_SERVER")
	viper.BindEnv("Mail.Port", "MAIL_PORT")
	viper.BindEnv("Mail.UseTLS", "MAIL_USE_TLS")
	viper.BindEnv("Mail.Username", "MAIL_USERNAME")
	viper.BindEnv("Mail.Password", "MAIL_PASSWORD")
	viper.BindEnv("Payment.PublicKey", "STRIPE_PUBLIC_KEY")
	viper.BindEnv("Payment.SecretKey", "STRIPE_SECRET_KEY")
}
