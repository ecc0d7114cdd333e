package entity

// MatchAnyRegex is stored for countries registered without a company number format.
const MatchAnyRegex = "^.*$"

type Country struct {
	ISOCode            string `gorm:"primaryKey;column:iso_code;size:2"`
	Name               string `gorm:"not null;uniqueIndex"`
	CompanyNumberRegex string `gorm:"not null"`
	CreatedAt          int64  `gorm:"not null"`
	UpdatedAt          int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Companies []*Company `gorm:"foreignKey:CountryCode;references:ISOCode"`
}
