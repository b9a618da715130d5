package config

// AuthConfig holds the settings of the external auth provider.
type AuthConfig struct {
	// BaseURL is the provider address whose /userinfo endpoint resolves
	// access tokens to profiles.
	BaseURL   string `yaml:"base_url" env:"NOTESHARE_AUTH_BASE_URL" env-default:"http://localhost:9096"`
	SecretKey string `yaml:"secret_key" env:"NOTESHARE_AUTH_SECRET_KEY" env-default:"insecure-dev-secret"`
}

// InvitesConfig holds the invite link settings.
type InvitesConfig struct {
	// BaseURL is the public address embedded in invite-acceptance links.
	BaseURL string `yaml:"base_url" env:"NOTESHARE_INVITE_BASE_URL" env-default:"http://localhost:8080"`
}
