package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	EmailTestMode    bool   // When true, emails are logged to console instead of sent
	SalesNotifyEmail string // Receives a notification for every new lead
	// Site
	AppURL           string
	TursoDatabaseURL string
	TursoAuthToken   string
	// Contact form abuse limits
	LeadRateLimit  int // Submissions allowed per IP per window
	LeadRateWindow int // Window length in minutes
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage (lead exports)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	ExportDir         string
	// Daily lead digest (cron schedule, "off" disables)
	LeadDigestSchedule string
	Timezone           string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "db/app.db"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "hello@autobot.ai"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "AutoBot AI"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		SalesNotifyEmail:   getEnv("SALES_NOTIFY_EMAIL", ""),
		AppURL:             strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		TursoDatabaseURL:   getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:     getEnv("TURSO_AUTH_TOKEN", ""),
		LeadRateLimit:      getEnvInt("LEAD_RATE_LIMIT", 5),
		LeadRateWindow:     getEnvInt("LEAD_RATE_WINDOW_MINUTES", 60),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		ExportDir:          getEnv("EXPORT_DIR", "exports"),
		LeadDigestSchedule: digestSchedule(getEnv("LEAD_DIGEST_SCHEDULE", "0 8 * * *")),
		Timezone:           getEnv("TIMEZONE", "America/New_York"),
	}

	cfg.Validate()
	return cfg
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TurnstileEnabled reports whether contact submissions require a Turnstile token
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

// Validate logs configuration problems. In production a missing lead
// database is fatal since the contact form could not store anything.
func (c *Config) Validate() {
	if c.IsProduction() {
		if c.TursoDatabaseURL == "" {
			log.Fatal("[CRITICAL] TURSO_DATABASE_URL must be set in production")
		}
		if c.EmailTestMode {
			log.Printf("[WARNING] EMAIL_TEST_MODE is enabled in production. Lead notifications will only be logged.")
		}
	}
	if !c.TurnstileEnabled() {
		log.Printf("[WARNING] Turnstile keys not set. Contact form bot protection is disabled.")
	}
	if c.SalesNotifyEmail == "" {
		log.Printf("[INFO] SALES_NOTIFY_EMAIL not set. New leads will not trigger a notification.")
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// digestSchedule maps "off" to the empty, disabled schedule
func digestSchedule(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), "off") {
		return ""
	}
	return value
}
