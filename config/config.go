package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// StorageConfig configures the optional S3-compatible bucket used for
// product images.
type StorageConfig struct {
	Bucket          string `envconfig:"R2_BUCKET"`
	AccessKeyID     string `envconfig:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"R2_SECRET_ACCESS_KEY"`
	Endpoint        string `envconfig:"R2_ENDPOINT"`
	PublicDomain    string `envconfig:"R2_PUBLIC_DOMAIN"`

	MaxImages         int      `envconfig:"MAX_PROD_IMAGES" default:"4"`
	MaxUploadSizeMB   int      `envconfig:"MAX_UPLOAD_SIZE_MB" default:"5"`
	AllowedExtensions []string `envconfig:"ALLOWED_FILE_EXTENSIONS" default:".jpg,.jpeg,.png,.webp"`
	AllowedMimeTypes  []string `envconfig:"ALLOWED_FILE_MIME_TYPES" default:"image/jpeg,image/png,image/webp"`
}

type Config struct {
	Port              string        `envconfig:"PORT" default:"8000"`
	MongoURI          string        `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	DatabaseName      string        `envconfig:"DATABASE_NAME" default:"sellerDashboard"`
	SellersCollection string        `envconfig:"SELLERS_COLLECTION" default:"sellers"`
	AllowedOrigins    []string      `envconfig:"ALLOWED_ORIGINS"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat         string        `envconfig:"LOG_FORMAT" default:"text"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	StorageConfig
}

// Load reads .env (if any) into the process environment and then decodes the
// environment into a Config.
func Load(logger logrus.FieldLogger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			logger.Info("No .env file found, using system environment variables")
		} else {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI must not be empty")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("DATABASE_NAME must not be empty")
	}
	if c.MaxImages < 1 {
		return fmt.Errorf("MAX_PROD_IMAGES must be at least 1, got %d", c.MaxImages)
	}
	if c.MaxUploadSizeMB < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be at least 1, got %d", c.MaxUploadSizeMB)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// StorageEnabled reports whether enough bucket settings are present to
// accept image uploads.
func (c *Config) StorageEnabled() bool {
	s := c.StorageConfig
	return s.Bucket != "" && s.AccessKeyID != "" && s.SecretAccessKey != "" && s.Endpoint != ""
}
