package entity

const DefaultCompanyName = "Unknown"

// Company numbers are only unique inside the namespace of their country, which is
// enforced by the composite unique index below rather than by the services.
type Company struct {
	ID            int64  `gorm:"primaryKey;autoIncrement:false"`
	CompanyNumber string `gorm:"not null;size:100;uniqueIndex:idx_company_number_country"`
	CountryCode   string `gorm:"not null;size:2;uniqueIndex:idx_company_number_country"` // References: countries(iso_code)
	Name          string `gorm:"not null"`
	CreatedAt     int64  `gorm:"not null"`
	UpdatedAt     int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Scores []*Score `gorm:"foreignKey:CompanyID;references:ID"`
}
