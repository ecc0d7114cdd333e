package contract

type CountryRequest struct {
	ISOCode            string `json:"alpha_2_iso_code" validate:"required,countrycode"`
	Name               string `json:"name" validate:"required,min=2,max=100"`
	CompanyNumberRegex string `json:"company_number_regex" validate:"omitempty,max=500,regexp"`
}

type CountryResponse struct {
	ISOCode            string `json:"alpha_2_iso_code"`
	Name               string `json:"name"`
	CompanyNumberRegex string `json:"company_number_regex"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}
