package objects

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEndpoint is the canonical Neva Objects host.
const DefaultEndpoint = "https://s3.nevaobjects.id"

// DefaultExpiry is the presigned-URL lifetime used when neither the call nor
// the configuration specifies one.
const DefaultExpiry = time.Hour

// defaultRegion satisfies the AWS SDK's region requirement; S3-compatible
// endpoints ignore the value beyond request signing.
const defaultRegion = "us-east-1"

// Config holds the settings for a Client. Immutable once the client is
// constructed; one Config may be shared across clients.
type Config struct {
	AccessKey     string        `env:"OBJECTS_ACCESS_KEY,required"`
	SecretKey     string        `env:"OBJECTS_SECRET_KEY,required"`
	Bucket        string        `env:"OBJECTS_BUCKET,required"`
	Endpoint      string        `env:"OBJECTS_ENDPOINT" envDefault:"https://s3.nevaobjects.id"`
	Region        string        `env:"OBJECTS_REGION" envDefault:"us-east-1"`
	DefaultExpiry time.Duration `env:"OBJECTS_DEFAULT_EXPIRY" envDefault:"1h"`
}

// NewConfig returns a Config with the required credentials and all optional
// fields set to their defaults.
func NewConfig(accessKey, secretKey, bucket string) Config {
	return Config{
		AccessKey: accessKey,
		SecretKey: secretKey,
		Bucket:    bucket,
	}.withDefaults()
}

// LoadConfig reads configuration from a .env file (if present) and
// environment variables.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, &Error{Kind: KindGeneric, Code: "InvalidConfig", Message: "failed to parse environment: " + err.Error(), Err: ErrInvalidConfig}
	}
	return cfg, nil
}

// Validate reports the first missing or malformed field.
func (c Config) Validate() error {
	if c.AccessKey == "" {
		return configError("access key is required")
	}
	if c.SecretKey == "" {
		return configError("secret key is required")
	}
	if c.Bucket == "" {
		return configError("bucket is required")
	}
	if c.DefaultExpiry < 0 {
		return configError("default expiry must be positive")
	}
	return nil
}

// withDefaults returns a copy with unset optional fields filled in.
func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Region == "" {
		c.Region = defaultRegion
	}
	if c.DefaultExpiry == 0 {
		c.DefaultExpiry = DefaultExpiry
	}
	return c
}
