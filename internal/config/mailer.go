package config

import (
	"os"
	"sync"
)

type MailerConfig struct {
	BaseURL string
	APIKey  string
	From    string
}

var (
	mailerConfig *MailerConfig
	mailerOnce   sync.Once
)

func LoadMailerConfig() *MailerConfig {
	mailerOnce.Do(func() {
		mailerConfig = &MailerConfig{
			BaseURL: os.Getenv("MAILER_BASE_URL"),
			APIKey:  os.Getenv("MAILER_API_KEY"),
			From:    os.Getenv("MAILER_FROM"),
		}
	})
	return mailerConfig
}
