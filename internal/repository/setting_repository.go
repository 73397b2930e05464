package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodcart/internal/model"
)

// SettingRepository defines site-setting persistence operations. Writes are
// upserts keyed by the setting key.
type SettingRepository interface {
	List(ctx context.Context) ([]model.SiteSetting, error)
	Upsert(ctx context.Context, setting *model.SiteSetting) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository builds a GORM-backed repository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) List(ctx context.Context) ([]model.SiteSetting, error) {
	var settings []model.SiteSetting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *model.SiteSetting) error {
	setting.UpdatedAt = time.Now()
	// Admin updates carry only key and value; the stored description must
	// survive them. Description is assigned only when the caller supplies one.
	columns := []string{"value", "updated_at"}
	if setting.Description != "" {
		columns = append(columns, "description")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(setting).Error
}
