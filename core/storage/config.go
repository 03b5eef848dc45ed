package storage

import "time"

// Config holds the object storage settings of the raw document archive.
type Config struct {
	// Endpoint is host:port, optionally prefixed with http:// or https://.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS for scheme-less endpoints.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the archived source documents.
	Bucket string `mapstructure:"bucket" default:"catalog-raw"`
	// Region is the bucket location, e.g. us-east-1.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the connection timeout, 30 seconds when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
