package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"

	"github.com/rockridgeglobal/enquiry-relay/internal/mailer"
)

// Dispatch strategies. One is active per deployment; the WhatsApp variant
// composes deep links, the email variant relays through SMTP.
const (
	StrategyWhatsApp = "whatsapp"
	StrategyEmail    = "email"
)

// Config holds application configuration
type Config struct {
	ServerPort       string
	StaticDir        string
	LogDir           string
	DispatchStrategy string

	SMTPHost      string
	SMTPPort      int
	SMTPSecure    bool
	SMTPUser      string
	SMTPPass      string
	EmailFromName string
	EmailFrom     string
	EmailAdmin    string
}

var whitespace = regexp.MustCompile(`\s+`)

// Load reads configuration from environment variables, with the same
// defaults the service has always shipped with.
func Load() *Config {
	cfg := &Config{
		ServerPort:       getEnv("PORT", "3000"),
		StaticDir:        getEnv("STATIC_DIR", "."),
		LogDir:           getEnv("LOG_DIR", "logs"),
		DispatchStrategy: strings.ToLower(getEnv("DISPATCH_STRATEGY", StrategyEmail)),

		SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPSecure: os.Getenv("SMTP_SECURE") == "true",
		// Credentials are routinely pasted with stray whitespace (Gmail app
		// passwords render with spaces), so normalize them here.
		SMTPUser:      strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:      whitespace.ReplaceAllString(os.Getenv("SMTP_PASS"), ""),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Rockridge Global Preschool"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		EmailAdmin:    getEnv("EMAIL_ADMIN", "gohyacademytools@gmail.com"),
	}

	cfg.SMTPPort = 587
	if p, err := strconv.Atoi(getEnv("SMTP_PORT", "587")); err == nil {
		cfg.SMTPPort = p
	}

	if cfg.DispatchStrategy != StrategyWhatsApp && cfg.DispatchStrategy != StrategyEmail {
		cfg.DispatchStrategy = StrategyEmail
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MailerConfig builds the SMTP transport settings.
func (c *Config) MailerConfig() mailer.Config {
	return mailer.Config{
		Host:      c.SMTPHost,
		Port:      c.SMTPPort,
		Secure:    c.SMTPSecure,
		User:      c.SMTPUser,
		Pass:      c.SMTPPass,
		FromName:  c.EmailFromName,
		ReplyTo:   c.EmailFrom,
		Recipient: c.EmailAdmin,
	}
}

// GetCorsConfig returns CORS configuration for the application
func (c *Config) GetCorsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Type"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}
