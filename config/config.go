package config

import (
	"os"

	"github.com/lin-hy/gangcheng-bnb/internal/util"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	CacheURL    string
	MQURL       string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	cfg := &Config{
		Addr:          os.Getenv("ADDR"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		CacheURL:      os.Getenv("CACHE_URL"),
		MQURL:         os.Getenv("RABBIT_MQ_URL"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      os.Getenv("MAIL_FROM"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":5000"
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = "noreply@gangcheng.com"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@gangcheng.com"
	}
	return cfg, nil
}
