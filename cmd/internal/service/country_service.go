package service

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/domain/database/repository"
	"zscore/cmd/internal/domain/entity"
	"zscore/cmd/internal/utils"
	"zscore/cmd/internal/utils/apierror"
)

type CountryRepository interface {
	FindByISOCode(code string) (*entity.Country, error)
	FindAll(offset, limit int) ([]*entity.Country, error)
	Create(country *entity.Country) error
}

type DefaultCountryService struct {
	CountryRepo CountryRepository
	Validate    *validator.Validate
}

func NewCountryService(countryRepo CountryRepository, validate *validator.Validate) *DefaultCountryService {
	return &DefaultCountryService{
		CountryRepo: countryRepo,
		Validate:    validate,
	}
}

func (s *DefaultCountryService) GetCountries(page contract.Pagination) ([]*contract.CountryResponse, apierror.ErrorResponse) {
	countries, err := s.CountryRepo.FindAll(page.Offset, page.Limit)
	if err != nil {
		log.Errorf("failed to fetch countries: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CountryResponse, len(countries))
	for i, country := range countries {
		resp[i] = toCountryResponse(country)
	}
	return resp, nil
}

func (s *DefaultCountryService) GetCountry(code string) (*contract.CountryResponse, apierror.ErrorResponse) {
	country, err := s.CountryRepo.FindByISOCode(code)
	if err != nil {
		log.Errorf("failed to fetch country %s: %v", code, err)
		return nil, apierror.InternalServerError
	}

	if country == nil {
		return nil, apierror.CountryNotFoundError
	}
	return toCountryResponse(country), nil
}

// RegisterCountry stores a new country. Both the ISO code and the name must be
// unused, and an empty company number format is stored as MatchAnyRegex.
func (s *DefaultCountryService) RegisterCountry(req *contract.CountryRequest) (*contract.CountryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := s.CountryRepo.FindByISOCode(req.ISOCode)
	if err != nil {
		log.Errorf("failed to fetch country %s: %v", req.ISOCode, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.CountryExistsError
	}

	now := utils.NowUTC()
	country := &entity.Country{
		ISOCode:            req.ISOCode,
		Name:               req.Name,
		CompanyNumberRegex: normalizeCompanyNumberRegex(req.CompanyNumberRegex),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.CountryRepo.Create(country)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, apierror.CountryExistsError
	}

	if err != nil {
		log.Errorf("failed to create country %s: %v", req.ISOCode, err)
		return nil, apierror.InternalServerError
	}

	log.Infof("country registered: %s (%s)", country.Name, country.ISOCode)
	return toCountryResponse(country), nil
}

func normalizeCompanyNumberRegex(pattern string) string {
	if pattern == "" {
		return entity.MatchAnyRegex
	}
	return pattern
}

func toCountryResponse(c *entity.Country) *contract.CountryResponse {
	return &contract.CountryResponse{
		ISOCode:            c.ISOCode,
		Name:               c.Name,
		CompanyNumberRegex: c.CompanyNumberRegex,
		CreatedAt:          utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:          utils.FormatEpoch(c.UpdatedAt),
	}
}
