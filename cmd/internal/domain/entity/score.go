package entity

type Score struct {
	ID        int64   `gorm:"primaryKey;autoIncrement:false"`
	CompanyID int64   `gorm:"not null;index"` // References: companies(id)
	Year      int     `gorm:"not null"`
	ZScore    float64 `gorm:"not null;column:zscore"`
	CreatedAt int64   `gorm:"not null"`
	UpdatedAt int64   `gorm:"not null;autoUpdateTime:false"`
}
