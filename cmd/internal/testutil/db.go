// Package testutil provides fixtures shared by repository, service and handler tests.
package testutil

import (
	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"testing"
	"zscore/cmd/internal/domain/database"
	"zscore/cmd/internal/domain/entity"
	"zscore/cmd/internal/utils/uid"
	"zscore/cmd/internal/utils/validators"
)

// NewDB opens a migrated in-memory SQLite database that is closed with the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	uid.Init(1)

	db, err := database.Open(sqlite.Open(":memory:"), 1)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func NewValidate() *validator.Validate {
	validate := validator.New()
	validators.Register(validate)
	return validate
}

// SeedCountry inserts a country directly, bypassing the services.
func SeedCountry(t *testing.T, db *gorm.DB, code, name, pattern string) *entity.Country {
	t.Helper()
	country := &entity.Country{
		ISOCode:            code,
		Name:               name,
		CompanyNumberRegex: pattern,
		CreatedAt:          1,
		UpdatedAt:          1,
	}
	require.NoError(t, db.Create(country).Error)
	return country
}

// SeedCompany inserts a company directly, bypassing the services.
func SeedCompany(t *testing.T, db *gorm.DB, number, countryCode string) *entity.Company {
	t.Helper()
	company := &entity.Company{
		ID:            uid.Generate(),
		CompanyNumber: number,
		CountryCode:   countryCode,
		Name:          entity.DefaultCompanyName,
		CreatedAt:     1,
		UpdatedAt:     1,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}
