package service

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"regexp"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/domain/database/repository"
	"zscore/cmd/internal/domain/entity"
	"zscore/cmd/internal/infrastructure/metrics"
	"zscore/cmd/internal/utils"
	"zscore/cmd/internal/utils/apierror"
	"zscore/cmd/internal/utils/uid"
)

type CompanyRepository interface {
	FindByNumberAndCountry(number, countryCode string) (*entity.Company, error)
	FindAll(offset, limit int) ([]*entity.Company, error)
	Create(company *entity.Company) error
}

type DefaultCompanyService struct {
	CompanyRepo CompanyRepository
	CountryRepo CountryRepository
	Metrics     *metrics.Metrics
	Validate    *validator.Validate
}

func NewCompanyService(
	companyRepo CompanyRepository,
	countryRepo CountryRepository,
	m *metrics.Metrics,
	validate *validator.Validate,
) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo: companyRepo,
		CountryRepo: countryRepo,
		Metrics:     m,
		Validate:    validate,
	}
}

func (s *DefaultCompanyService) GetCompanies(page contract.Pagination) ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAll(page.Offset, page.Limit)
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, company := range companies {
		resp[i] = toCompanyResponse(company)
	}
	return resp, nil
}

func (s *DefaultCompanyService) RegisterCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	log.Infof("request to create company received: %s (%s)", req.CompanyNumber, req.CountryCode)
	company, err := s.CreateIfNotExists(req.CompanyNumber, req.CountryCode, req.Name)
	if err != nil {
		log.Errorf("failed to create company %s (%s): %v", req.CompanyNumber, req.CountryCode, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyCreationError
	}
	return toCompanyResponse(company), nil
}

// FindInCountry returns the company registered under exactly this number and
// country, or nil. The same number in another country is a different company.
func (s *DefaultCompanyService) FindInCountry(number, countryCode string) (*entity.Company, error) {
	company, err := s.CompanyRepo.FindByNumberAndCountry(number, countryCode)
	if err != nil {
		return nil, err
	}

	log.Debugf("company %s (%s): exists=%t", number, countryCode, company != nil)
	return company, nil
}

// GetOrCreate returns the existing company or creates it. It returns nil when the
// country does not exist or the number does not match the country's format.
// Calling it twice with the same arguments yields the same company.
func (s *DefaultCompanyService) GetOrCreate(number, countryCode string) (*entity.Company, error) {
	company, err := s.FindInCountry(number, countryCode)
	if err != nil || company != nil {
		return company, err
	}

	log.Infof("company %s (%s) doesn't exist, attempting to create it", number, countryCode)
	company, err = s.createCompany(number, countryCode, "")
	if errors.Is(err, repository.ErrDuplicate) {
		// Lost a creation race, the winner's row is the one to return
		return s.FindInCountry(number, countryCode)
	}
	return company, err
}

// CreateIfNotExists creates a company, refusing (nil result) when the number is
// already registered in that country. Unlike GetOrCreate it never returns an
// existing row.
func (s *DefaultCompanyService) CreateIfNotExists(number, countryCode, name string) (*entity.Company, error) {
	existing, err := s.FindInCountry(number, countryCode)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		log.Errorf("company %s (%s) exists in database, duplicates not allowed", number, countryCode)
		return nil, nil
	}

	company, err := s.createCompany(number, countryCode, name)
	if errors.Is(err, repository.ErrDuplicate) {
		log.Errorf("company %s (%s) was created concurrently, duplicates not allowed", number, countryCode)
		return nil, nil
	}
	return company, err
}

// createCompany enforces the creation rules shared by GetOrCreate and CreateIfNotExists.
// Rule violations yield (nil, nil), a unique index collision yields repository.ErrDuplicate.
func (s *DefaultCompanyService) createCompany(number, countryCode, name string) (*entity.Company, error) {
	country, err := s.CountryRepo.FindByISOCode(countryCode)
	if err != nil {
		return nil, err
	}

	if country == nil {
		log.Errorf("cannot create company for country that doesn't exist, %s must be created first", countryCode)
		return nil, nil
	}

	if !ValidateCompanyNumber(number, country.CompanyNumberRegex) {
		log.Errorf("invalid company number %q, it doesn't comply with the formatting rules for %s", number, countryCode)
		return nil, nil
	}

	if name == "" {
		name = entity.DefaultCompanyName
	}

	now := utils.NowUTC()
	company := &entity.Company{
		ID:            uid.Generate(),
		CompanyNumber: number,
		CountryCode:   countryCode,
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.CompanyRepo.Create(company); err != nil {
		return nil, err
	}

	s.Metrics.IncrementCompaniesCreated()
	log.Infof("company created: %s (id=%d, %s)", company.Name, company.ID, company.CountryCode)
	return company, nil
}

// ValidateCompanyNumber reports whether the pattern matches anywhere in number.
// Patterns must anchor themselves with ^ and $ to require a full match.
func ValidateCompanyNumber(number, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Warnf("company number pattern %q does not compile: %v", pattern, err)
		return false
	}
	return re.MatchString(number)
}

func toCompanyResponse(c *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		ID:            c.ID,
		CompanyNumber: c.CompanyNumber,
		CountryCode:   c.CountryCode,
		Name:          c.Name,
		CreatedAt:     utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:     utils.FormatEpoch(c.UpdatedAt),
	}
}
