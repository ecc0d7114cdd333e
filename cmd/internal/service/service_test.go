package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"testing"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/domain/database/repository"
	"zscore/cmd/internal/infrastructure/metrics"
	"zscore/cmd/internal/testutil"
)

// fixture wires every service against a fresh in-memory database.
type fixture struct {
	db        *gorm.DB
	validate  *validator.Validate
	metrics   *metrics.Metrics
	archive   *stubArchive
	countries *DefaultCountryService
	companies *DefaultCompanyService
	scores    *DefaultScoreService
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	validate := testutil.NewValidate()
	m := metrics.New(prometheus.NewRegistry())
	archive := &stubArchive{}

	countryRepo := repository.NewCountryRepository(db)
	companies := NewCompanyService(repository.NewCompanyRepository(db), countryRepo, m, validate)

	return &fixture{
		db:        db,
		validate:  validate,
		metrics:   m,
		archive:   archive,
		countries: NewCountryService(countryRepo, validate),
		companies: companies,
		scores:    NewScoreService(repository.NewScoreRepository(db), companies, archive, m, validate),
	}
}

type archiveCall struct {
	countryCode   string
	companyNumber string
	financials    []contract.Financials
	scores        []*contract.ScoreResult
}

type stubArchive struct {
	calls []archiveCall
	err   error
}

func (a *stubArchive) Archive(countryCode, companyNumber string, financials []contract.Financials, scores []*contract.ScoreResult) (string, error) {
	a.calls = append(a.calls, archiveCall{countryCode, companyNumber, financials, scores})
	if a.err != nil {
		return "", a.err
	}
	return "financials/" + countryCode + "/" + companyNumber + "/stub.json", nil
}
