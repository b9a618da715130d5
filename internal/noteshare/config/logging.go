package config

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTESHARE_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTESHARE_LOGGER_MODE" env-default:"development"`
}
