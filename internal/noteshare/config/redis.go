package config

import "fmt"

// RedisConfig holds the profile cache settings. The cache is optional;
// with Enabled false every profile resolution goes to the auth provider.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled" env:"NOTESHARE_REDIS_ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"NOTESHARE_REDIS_HOST" env-default:"0.0.0.0"`
	Port     int    `yaml:"port" env:"NOTESHARE_REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"NOTESHARE_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"NOTESHARE_REDIS_DB" env-default:"0"`
}

// GetAddressString returns the Redis address.
func (c *RedisConfig) GetAddressString() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
