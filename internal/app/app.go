// Package app wires configuration into services. The HTTP server and the
// CLI share one Container.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vastgoed-sync/internal/application/discovery"
	"vastgoed-sync/internal/application/emails"
	"vastgoed-sync/internal/application/extract"
	"vastgoed-sync/internal/application/geocoding"
	"vastgoed-sync/internal/application/health"
	"vastgoed-sync/internal/application/jobs"
	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/application/marketplace/immovlan"
	"vastgoed-sync/internal/application/marketplace/spotto"
	"vastgoed-sync/internal/application/notify"
	"vastgoed-sync/internal/application/proximity"
	"vastgoed-sync/internal/application/reconcile"
	"vastgoed-sync/internal/application/subscribers"
	"vastgoed-sync/internal/config"
	"vastgoed-sync/internal/infrastructure/database"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	agencyName  = "D&A Vastgoed"
	geocodeTTL  = 90 * 24 * time.Hour
	httpTimeout = 30 * time.Second
)

type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client // nil when REDIS_URL is unset
	Listings    *listings.Service
	Subscribers *subscribers.Service
	Runner      *jobs.Runner
	Health      *health.Collector
}

// New opens the database and redis, migrates, and builds the container.
func New(cfg *config.Config) (*Container, error) {
	db, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("Failed to migrate database: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable, continuing without it")
			_ = rdb.Close()
			rdb = nil
		}
	}
	return Build(cfg, db, rdb)
}

// Build assembles every service on top of already opened connections.
func Build(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*Container, error) {
	index := proximity.New(nil)
	if cfg.PostalCodesPath != "" {
		idx, err := proximity.Load(cfg.PostalCodesPath)
		if err != nil {
			return nil, fmt.Errorf("Failed to load postal codes: %w", err)
		}
		index = idx
	}
	log.Info().Int("postal_codes", index.Len()).Msg("Postal index loaded")

	client := &http.Client{Timeout: httpTimeout}
	rewrite := discovery.Rewrite{From: cfg.BaseURLReplace, To: cfg.BaseURL}
	feedHost := cfg.BaseURLReplace
	if feedHost == "" {
		feedHost = cfg.BaseURL
	}

	listingSvc := &listings.Service{DB: db}
	subscriberSvc := &subscribers.Service{DB: db}

	var geocoder geocoding.Geocoder = &geocoding.Client{BaseURL: cfg.GeocodeBaseURL, APIKey: cfg.GeocodeAPIKey, Client: client}
	if rdb != nil {
		geocoder = &geocoding.CachedGeocoder{Next: geocoder, Redis: rdb, TTL: geocodeTTL}
	}
	enricher := &geocoding.Enricher{Geocoder: geocoder, Interval: cfg.GeocodeInterval}

	brevo := &emails.BrevoClient{APIKey: cfg.BrevoAPIKey, MailFrom: cfg.MailFrom, SenderName: agencyName, Client: client}

	var locker jobs.Locker = &jobs.LocalLocker{}
	if rdb != nil {
		locker = &jobs.RedisLocker{Client: rdb}
	}

	runner := &jobs.Runner{
		Locker:   locker,
		Listings: listingSvc,
		Scraper: &reconcile.Service{
			Links:    &discovery.Client{BaseURL: feedHost, Rewrite: rewrite, Client: client},
			Pages:    &extract.Fetcher{Client: client},
			Rewrite:  rewrite,
			Listings: listingSvc,
			Enricher: enricher,
		},
		Enricher: enricher,
		Marketplaces: &marketplace.Service{
			Listings: listingSvc,
			Registry: marketplace.NewRegistry(publishers(cfg)...),
			Reports:  &emails.UploadReporter{Brevo: brevo, To: cfg.OfficeEmail, TemplateID: cfg.UploadReportTemplateID},
		},
		Notifier: &notify.Notifier{
			Listings:    listingSvc,
			Subscribers: subscriberSvc,
			Matcher:     &notify.Matcher{Index: index},
			Mail:        brevo,
			TemplateID:  cfg.NotifyTemplateID,
		},
	}

	upstreams := map[string]string{}
	if feedHost != "" {
		upstreams["cms"] = feedHost
	}
	if cfg.GeocodeBaseURL != "" {
		upstreams["geocoder"] = cfg.GeocodeBaseURL
	}

	return &Container{
		Config:      cfg,
		DB:          db,
		Redis:       rdb,
		Listings:    listingSvc,
		Subscribers: subscriberSvc,
		Runner:      runner,
		Health:      &health.Collector{Rdb: rdb, DB: dbPinger{db}, Upstreams: upstreams},
	}, nil
}

// publishers returns the adapters listed in ENABLED_MARKETPLACES.
func publishers(cfg *config.Config) []marketplace.Publisher {
	var out []marketplace.Publisher
	if cfg.MarketplaceEnabled(marketplace.NameImmovlan) {
		out = append(out, &immovlan.Client{
			BaseURL: cfg.ImmovlanBaseURL,
			Credentials: immovlan.Credentials{
				BusinessEmail:    cfg.ImmovlanBusinessEmail,
				TechnicalEmail:   cfg.ImmovlanTechnicalEmail,
				SoftwareID:       cfg.ImmovlanSoftwareID,
				ProCustomerID:    cfg.ImmovlanProCustomerID,
				SoftwarePassword: cfg.ImmovlanSoftwarePassword,
			},
			Contact:   immovlan.Contact{Email: cfg.ContactEmail, Phone: cfg.ContactPhone},
			MaxImages: cfg.ImmovlanMaxImages,
			Images:    &marketplace.ImageEncoder{Client: &http.Client{Timeout: httpTimeout}},
		})
	}
	if cfg.MarketplaceEnabled(marketplace.NameSpotto) {
		out = append(out, &spotto.Client{
			BaseURL:         cfg.SpottoBaseURL,
			SubscriptionKey: cfg.SpottoSubscriptionKey,
			PartnerID:       cfg.SpottoPartnerID,
			Agency: spotto.Agency{
				Name:       agencyName,
				Email:      cfg.ContactEmail,
				Phone:      cfg.ContactPhone,
				WebsiteURL: cfg.BaseURL,
			},
			MaxImages: cfg.SpottoMaxImages,
		})
	}
	return out
}

// Close releases the database and redis connections.
func (c *Container) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

type dbPinger struct{ db *gorm.DB }

func (p dbPinger) Ping() error {
	if p.db == nil {
		return fmt.Errorf("database not configured")
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
