package contract

type CompanyRequest struct {
	CompanyNumber string `json:"company_number" validate:"required,max=100,nospaces"`
	CountryCode   string `json:"country_alpha_2_iso_code" validate:"required,countrycode"`
	Name          string `json:"name" validate:"omitempty,max=100"`
}

type CompanyResponse struct {
	ID            int64  `json:"id"`
	CompanyNumber string `json:"company_number"`
	CountryCode   string `json:"country_alpha_2_iso_code"`
	Name          string `json:"name"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
