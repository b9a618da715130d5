package config

// SMTPConfig holds the transactional email settings.
type SMTPConfig struct {
	Host     string `yaml:"host" env:"NOTESHARE_SMTP_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"NOTESHARE_SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"NOTESHARE_SMTP_USERNAME"`
	Password string `yaml:"password" env:"NOTESHARE_SMTP_PASSWORD"`
	From     string `yaml:"from" env:"NOTESHARE_SMTP_FROM" env-default:"noreply@noteshare.local"`
}
