package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"foodcart/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// A value-only upsert must leave the stored description column alone; the
// conflict assignment list may not include description.
func TestSettingRepository_UpsertValueOnlyKeepsDescription(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("ON DUPLICATE KEY UPDATE `value`=VALUES\\(`value`\\),`updated_at`=VALUES\\(`updated_at`\\)$").
		WithArgs("company_phone", "+91 90000 00000", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewSettingRepository(db)
	err := repo.Upsert(context.Background(), &model.SiteSetting{
		Key:   "company_phone",
		Value: "+91 90000 00000",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_UpsertWithDescriptionUpdatesIt(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("ON DUPLICATE KEY UPDATE `value`=VALUES\\(`value`\\),`updated_at`=VALUES\\(`updated_at`\\),`description`=VALUES\\(`description`\\)$").
		WithArgs("company_phone", "+91 90000 00000", "Company phone number", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewSettingRepository(db)
	err := repo.Upsert(context.Background(), &model.SiteSetting{
		Key:         "company_phone",
		Value:       "+91 90000 00000",
		Description: "Company phone number",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
