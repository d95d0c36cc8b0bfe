package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is loaded once at startup and treated as immutable afterwards.
type Config struct {
	Port       string
	ServiceEnv string

	// Record store (ERP) connection
	ERPURL      string
	ERPDatabase string
	ERPUsername string
	ERPPassword string
	ERPUserID   int // 0 means authenticate at startup
	ERPTimeout  time.Duration

	// Token service
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpire  time.Duration
	RefreshTokenExpire time.Duration

	// OTP service
	OTPSecret      string
	OTPInterval    int // TOTP period in seconds, also the resend throttle
	OTPValidWindow int

	// Account segmentation sets
	SlowPayerSegmentations []int
	HypercareSegmentations []int

	// Severity tiers
	SlowPayerMidDays  int
	SlowPayerRedDays  int
	HypercareDays     int
	HypercareAmberMax int
	HypercareRedMin   int

	RedisAddr       string
	SummaryCacheTTL time.Duration

	KafkaBrokers []string
}

// Load reads the configuration from the environment. Missing optional
// values fall back to the defaults the mobile backend shipped with.
func Load() Config {
	return Config{
		Port:       getEnv("PORT", "3000"),
		ServiceEnv: getEnv("SERVICE_ENV", "LOCAL"),

		ERPURL:      os.Getenv("ODOO_URL"),
		ERPDatabase: os.Getenv("ODOO_DB"),
		ERPUsername: os.Getenv("ODOO_USERNAME"),
		ERPPassword: os.Getenv("ODOO_PASSWORD"),
		ERPUserID:   getEnvInt("ODOO_UID", 0),
		ERPTimeout:  time.Duration(getEnvInt("ODOO_TIMEOUT_SECONDS", 15)) * time.Second,

		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenExpire:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenExpire: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 30)) * 24 * time.Hour,

		OTPSecret:      os.Getenv("OTP_SECRET"),
		OTPInterval:    getEnvInt("OTP_INTERVAL", 60),
		OTPValidWindow: getEnvInt("OTP_VALID_WINDOW", 15),

		SlowPayerSegmentations: getEnvIntList("ODOO_SLOW_PAYER_SEGMENTATION_LIST"),
		HypercareSegmentations: getEnvIntList("ODOO_HYPERCARE_SEGMENTATION_LIST"),

		SlowPayerMidDays:  getEnvInt("SLOW_PAYER_MID_DAYS", 30),
		SlowPayerRedDays:  getEnvInt("SLOW_PAYER_RED_DAYS", 60),
		HypercareDays:     getEnvInt("HYPERCARE_DAYS", 75),
		HypercareAmberMax: getEnvInt("HYPERCARE_AMBER_MAX_DAYS", 17),
		HypercareRedMin:   getEnvInt("HYPERCARE_RED_MIN_DAYS", 20),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		SummaryCacheTTL: time.Duration(getEnvInt("SUMMARY_CACHE_TTL_SECONDS", 60)) * time.Second,

		KafkaBrokers: getEnvList("KAFKA_BROKERS"),
	}
}

// IsProd reports whether OTP codes must be withheld from responses.
func (c Config) IsProd() bool {
	env := strings.ToUpper(c.ServiceEnv)
	return env != "LOCAL" && env != "PREPROD"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvIntList(key string) []int {
	var out []int
	for _, part := range getEnvList(key) {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}
