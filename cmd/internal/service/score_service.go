package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"math"
	"time"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/domain/entity"
	"zscore/cmd/internal/infrastructure/metrics"
	"zscore/cmd/internal/utils"
	"zscore/cmd/internal/utils/apierror"
	"zscore/cmd/internal/utils/uid"
)

// Weights of the five ratios making up the solvency score.
const (
	workingCapitalWeight   = 1.2
	retainedEarningsWeight = 1.4
	ebitWeight             = 3.3
	equityWeight           = 0.6
	salesWeight            = 1.0
)

type ScoreRepository interface {
	FindByCompanyID(companyID int64, offset, limit int) ([]*entity.Score, error)
	CreateAll(scores []*entity.Score) error
}

type CompanyResolver interface {
	FindInCountry(number, countryCode string) (*entity.Company, error)
	GetOrCreate(number, countryCode string) (*entity.Company, error)
}

type FinancialsArchive interface {
	Archive(countryCode, companyNumber string, financials []contract.Financials, scores []*contract.ScoreResult) (string, error)
}

type DefaultScoreService struct {
	ScoreRepo ScoreRepository
	Companies CompanyResolver
	Archive   FinancialsArchive
	Metrics   *metrics.Metrics
	Validate  *validator.Validate
}

func NewScoreService(
	scoreRepo ScoreRepository,
	companies CompanyResolver,
	archive FinancialsArchive,
	m *metrics.Metrics,
	validate *validator.Validate,
) *DefaultScoreService {
	return &DefaultScoreService{
		ScoreRepo: scoreRepo,
		Companies: companies,
		Archive:   archive,
		Metrics:   m,
		Validate:  validate,
	}
}

// SubmitFinancials resolves (or creates) the company and stores one score per
// yearly record. A batch with a zero denominator or a score out of float range
// anywhere is rejected whole.
func (s *DefaultScoreService) SubmitFinancials(countryCode, number string, req *contract.FinancialsRequest) ([]*contract.ScoreResult, apierror.ErrorResponse) {
	start := time.Now()
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	log.Infof("received financials to calculate scores for company_number=%s (%s)", number, countryCode)
	company, err := s.Companies.GetOrCreate(number, countryCode)
	if err != nil {
		log.Errorf("failed to resolve company %s (%s): %v", number, countryCode, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		s.Metrics.IncrementRejectedBatch("company")
		return nil, apierror.CompanyResolutionError
	}

	financials := req.Values()
	if !ValidateFinancials(financials) {
		s.Metrics.IncrementRejectedBatch("financials")
		return nil, apierror.InvalidFinancialsError
	}

	scores, err := s.RequestScores(company, financials)
	if err != nil {
		log.Errorf("failed to store scores for company %d: %v", company.ID, err)
		return nil, apierror.InternalServerError
	}

	// The scores are stored already, a failed archive must not fail the request
	if _, err = s.Archive.Archive(countryCode, number, financials, scores); err != nil {
		log.Errorf("failed to archive financials for company %d: %v", company.ID, err)
	}

	s.Metrics.ObserveSubmission(start)
	return scores, nil
}

// GetScores lists the stored scores of a company. A company missing from the
// given country is reported as not found, never as an empty list.
func (s *DefaultScoreService) GetScores(countryCode, number string, page contract.Pagination) ([]*contract.ScoreResponse, apierror.ErrorResponse) {
	company, err := s.Companies.FindInCountry(number, countryCode)
	if err != nil {
		log.Errorf("failed to fetch company %s (%s): %v", number, countryCode, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}

	log.Infof("company retrieved: %s (company_id=%d)", company.Name, company.ID)
	scores, err := s.ScoreRepo.FindByCompanyID(company.ID, page.Offset, page.Limit)
	if err != nil {
		log.Errorf("failed to fetch scores for company %d: %v", company.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ScoreResponse, len(scores))
	for i, score := range scores {
		resp[i] = toScoreResponse(score)
	}
	return resp, nil
}

// RequestScores calculates and stores one score per record, in input order.
// The batch is stored atomically, storage errors are returned as they are.
// The batch is expected to be validated with ValidateFinancials beforehand.
func (s *DefaultScoreService) RequestScores(company *entity.Company, financials []contract.Financials) ([]*contract.ScoreResult, error) {
	log.Infof("scores to be calculated for %s (company_number=%s, country=%s)",
		company.Name, company.CompanyNumber, company.CountryCode)

	now := utils.NowUTC()
	results := make([]*contract.ScoreResult, len(financials))
	rows := make([]*entity.Score, len(financials))
	for i, f := range financials {
		results[i] = &contract.ScoreResult{Year: f.Year, ZScore: CalculateScore(f)}
		rows[i] = &entity.Score{
			ID:        uid.Generate(),
			CompanyID: company.ID,
			Year:      results[i].Year,
			ZScore:    results[i].ZScore,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if err := s.ScoreRepo.CreateAll(rows); err != nil {
		return nil, err
	}
	log.Debugf("%d scores inserted for company_id=%d", len(rows), company.ID)

	s.Metrics.AddScoresCalculated(len(results))
	return results, nil
}

// ValidateFinancials reports whether every record has non-zero total assets
// and total liabilities, the denominators of the score, and yields a finite score.
// Infinite scores cannot be encoded as JSON once stored.
func ValidateFinancials(financials []contract.Financials) bool {
	for _, f := range financials {
		if f.TotalAssets == 0 || f.TotalLiabilities == 0 {
			return false
		}

		score := CalculateScore(f)
		if math.IsInf(score, 0) || math.IsNaN(score) {
			return false
		}
	}
	return true
}

// CalculateScore returns the solvency score of one year, rounded to two decimals.
func CalculateScore(f contract.Financials) float64 {
	a := workingCapitalWeight * (f.WorkingCapital / f.TotalAssets)
	b := retainedEarningsWeight * (f.RetainedEarnings / f.TotalAssets)
	c := ebitWeight * (f.EBIT / f.TotalAssets)
	d := equityWeight * (f.Equity / f.TotalLiabilities)
	e := salesWeight * (f.Sales / f.TotalAssets)
	return roundTo2(a + b + c + d + e)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toScoreResponse(s *entity.Score) *contract.ScoreResponse {
	return &contract.ScoreResponse{
		ID:        s.ID,
		Year:      s.Year,
		ZScore:    s.ZScore,
		CreatedAt: utils.FormatEpoch(s.CreatedAt),
		UpdatedAt: utils.FormatEpoch(s.UpdatedAt),
	}
}
