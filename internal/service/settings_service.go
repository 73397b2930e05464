package service

import (
	"context"
	"fmt"
	"time"

	"foodcart/internal/cache"
	"foodcart/internal/model"
	"foodcart/internal/repository"
)

const (
	settingsCacheKey = "settings:public"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsService presents the site-settings collection as a flat key-value
// map. Reads are public; writes are admin-only at the router.
type SettingsService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	BulkUpsert(ctx context.Context, updates map[string]string) error
	InitDefaults(ctx context.Context) error
}

type settingsService struct {
	settingRepo repository.SettingRepository
	cache       *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingRepo repository.SettingRepository, cacheClient *cache.Client) SettingsService {
	return &settingsService{
		settingRepo: settingRepo,
		cache:       cacheClient,
	}
}

// GetAll returns the full key-value map, hiding descriptions and timestamps.
func (s *settingsService) GetAll(ctx context.Context) (map[string]string, error) {
	var cached map[string]string
	if s.cache.GetJSON(ctx, settingsCacheKey, &cached) {
		return cached, nil
	}

	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}

	s.cache.SetJSON(ctx, settingsCacheKey, out, settingsCacheTTL)
	return out, nil
}

// BulkUpsert writes each key sequentially. The loop is not atomic: a failure
// mid-way leaves earlier keys updated and later ones untouched, matching the
// upsert-per-key contract of the API.
func (s *settingsService) BulkUpsert(ctx context.Context, updates map[string]string) error {
	for key, value := range updates {
		setting := &model.SiteSetting{Key: key, Value: value}
		if err := s.settingRepo.Upsert(ctx, setting); err != nil {
			return fmt.Errorf("upsert setting %q: %w", key, err)
		}
	}
	_ = s.cache.Delete(ctx, settingsCacheKey)
	return nil
}

// InitDefaults seeds the documented default keys. Existing keys are
// overwritten with the defaults, same as running the seeding twice.
func (s *settingsService) InitDefaults(ctx context.Context) error {
	for _, setting := range DefaultSettings() {
		if err := s.settingRepo.Upsert(ctx, &setting); err != nil {
			return fmt.Errorf("init setting %q: %w", setting.Key, err)
		}
	}
	_ = s.cache.Delete(ctx, settingsCacheKey)
	return nil
}

// DefaultSettings returns the contact and display-statistics defaults used by
// the init endpoint and the seed utility.
func DefaultSettings() []model.SiteSetting {
	return []model.SiteSetting{
		{Key: "stats_customers", Value: "6500", Description: "Happy Customers count"},
		{Key: "stats_cities", Value: "500", Description: "Cities Served count"},
		{Key: "stats_experience", Value: "35", Description: "Years of Experience"},
		{Key: "stats_products", Value: "1000", Description: "Total Products count"},
		{Key: "company_phone", Value: "+91 85999 99394", Description: "Company phone number"},
		{Key: "company_email", Value: "info@foodcart.example", Description: "Company email"},
		{Key: "company_address", Value: "Rajkot, Gujarat, India - 360001", Description: "Company address"},
		{Key: "company_whatsapp", Value: "918599999394", Description: "WhatsApp number (without +)"},
		{Key: "working_hours", Value: "Mon - Sat: 9:00 AM - 7:00 PM", Description: "Working hours"},
		{Key: "year_founded", Value: "1988", Description: "Year company was founded"},
	}
}
