package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env         string
	Port        string
	DatabaseURL string // postgres DSN; when empty SQLitePath is used
	SQLitePath  string
	RedisURL    string
	AdminAPIKey string // shared secret for admin job triggers (?apiKey=)

	BaseURL        string // public site, e.g. https://dnavastgoed.be
	BaseURLReplace string // internal CMS host that the feed and pages link to

	GeocodeBaseURL  string
	GeocodeAPIKey   string
	GeocodeInterval time.Duration

	PostalCodesPath string

	BrevoAPIKey            string
	MailFrom               string
	OfficeEmail            string
	NotifyTemplateID       int
	UploadReportTemplateID int

	EnabledMarketplaces []string

	ImmovlanBaseURL          string
	ImmovlanBusinessEmail    string
	ImmovlanTechnicalEmail   string
	ImmovlanSoftwareID       string
	ImmovlanProCustomerID    string
	ImmovlanSoftwarePassword string
	ImmovlanMaxImages        int

	SpottoBaseURL         string
	SpottoSubscriptionKey string
	SpottoPartnerID       string
	SpottoMaxImages       int

	ContactEmail string
	ContactPhone string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SQLITE_PATH", "vastgoed.db")
	v.SetDefault("GEOCODE_BASE_URL", "https://geocode.maps.co")
	v.SetDefault("GEOCODE_INTERVAL_MS", 500)
	v.SetDefault("POSTAL_CODES_PATH", "data/postal_codes.json")
	v.SetDefault("MAIL_FROM", "info@dnavastgoed.be")
	v.SetDefault("OFFICE_EMAIL", "info@dnavastgoed.be")
	v.SetDefault("ENABLED_MARKETPLACES", "immovlan,spotto")
	v.SetDefault("IMMOVLAN_BASE_URL", "https://api.immovlan.be")
	v.SetDefault("IMMOVLAN_MAX_IMAGES", 25)
	v.SetDefault("SPOTTO_BASE_URL", "https://api.spotto.be")
	v.SetDefault("SPOTTO_MAX_IMAGES", 30)
	v.SetDefault("CONTACT_EMAIL", "info@dnavastgoed.be")
	v.SetDefault("CONTACT_PHONE", "037761922")

	return &Config{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		RedisURL:    v.GetString("REDIS_URL"),
		AdminAPIKey: v.GetString("ADMIN_API_KEY"),

		BaseURL:        strings.TrimRight(v.GetString("BASE_URL"), "/"),
		BaseURLReplace: strings.TrimRight(v.GetString("BASE_URL_REPLACE"), "/"),

		GeocodeBaseURL:  v.GetString("GEOCODE_BASE_URL"),
		GeocodeAPIKey:   v.GetString("GEOCODE_API_KEY"),
		GeocodeInterval: time.Duration(v.GetInt("GEOCODE_INTERVAL_MS")) * time.Millisecond,

		PostalCodesPath: v.GetString("POSTAL_CODES_PATH"),

		BrevoAPIKey:            v.GetString("BREVO_API_KEY"),
		MailFrom:               v.GetString("MAIL_FROM"),
		OfficeEmail:            v.GetString("OFFICE_EMAIL"),
		NotifyTemplateID:       v.GetInt("NOTIFY_TEMPLATE_ID"),
		UploadReportTemplateID: v.GetInt("UPLOAD_REPORT_TEMPLATE_ID"),

		EnabledMarketplaces: splitList(v.GetString("ENABLED_MARKETPLACES")),

		ImmovlanBaseURL:          v.GetString("IMMOVLAN_BASE_URL"),
		ImmovlanBusinessEmail:    v.GetString("IMMOVLAN_BUSINESS_EMAIL"),
		ImmovlanTechnicalEmail:   v.GetString("IMMOVLAN_TECHNICAL_EMAIL"),
		ImmovlanSoftwareID:       v.GetString("IMMOVLAN_SOFTWARE_ID"),
		ImmovlanProCustomerID:    v.GetString("IMMOVLAN_PRO_CUSTOMER_ID"),
		ImmovlanSoftwarePassword: v.GetString("IMMOVLAN_SOFTWARE_PASSWORD"),
		ImmovlanMaxImages:        v.GetInt("IMMOVLAN_MAX_IMAGES"),

		SpottoBaseURL:         v.GetString("SPOTTO_BASE_URL"),
		SpottoSubscriptionKey: v.GetString("SPOTTO_SUBSCRIPTION_KEY"),
		SpottoPartnerID:       v.GetString("SPOTTO_PARTNER_ID"),
		SpottoMaxImages:       v.GetInt("SPOTTO_MAX_IMAGES"),

		ContactEmail: v.GetString("CONTACT_EMAIL"),
		ContactPhone: v.GetString("CONTACT_PHONE"),
	}, nil
}

// MarketplaceEnabled reports whether name is listed in ENABLED_MARKETPLACES.
func (c *Config) MarketplaceEnabled(name string) bool {
	for _, m := range c.EnabledMarketplaces {
		if m == name {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
