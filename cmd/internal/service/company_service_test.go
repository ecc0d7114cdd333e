package service

import (
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/domain/database/repository"
	"zscore/cmd/internal/domain/entity"
	"zscore/cmd/internal/testutil"
	"zscore/cmd/internal/utils/apierror"
)

const gbPattern = `^([a-zA-Z]{2}[0-9]{6}|[0-9]{8})$`

func TestValidateCompanyNumber(t *testing.T) {
	cases := []struct {
		name    string
		number  string
		pattern string
		want    bool
	}{
		{"digits only", "12345678", `^[0-9]*$`, true},
		{"uk format too short", "123", gbPattern, false},
		{"uk format digits", "12345678", gbPattern, true},
		{"uk format letters", "SC123456", gbPattern, true},
		{"match any", "anything at all", entity.MatchAnyRegex, true},
		{"unanchored pattern matches a substring", "ABC-123-XYZ", `[0-9]{3}`, true},
		{"unanchored pattern without a match", "ABC-XYZ", `[0-9]{3}`, false},
		{"pattern that does not compile", "12345678", `([0-9]`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateCompanyNumber(tc.number, tc.pattern))
		})
	}
}

func TestGetOrCreate(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)

		first, err := f.companies.GetOrCreate("12345678", "GB")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, entity.DefaultCompanyName, first.Name)

		second, err := f.companies.GetOrCreate("12345678", "GB")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.CompaniesCreated))
	})

	t.Run("returns nil when the country does not exist", func(t *testing.T) {
		f := newFixture(t)

		company, err := f.companies.GetOrCreate("12345678", "GB")
		require.NoError(t, err)
		assert.Nil(t, company)
	})

	t.Run("returns nil when the number violates the country format", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)

		company, err := f.companies.GetOrCreate("123", "GB")
		require.NoError(t, err)
		assert.Nil(t, company)

		found, err := f.companies.FindInCountry("123", "GB")
		require.NoError(t, err)
		assert.Nil(t, found, "a rejected company must not be stored")
	})

	t.Run("same number in two countries yields two companies", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)
		testutil.SeedCountry(t, f.db, "US", "United States", entity.MatchAnyRegex)

		gb, err := f.companies.GetOrCreate("12345678", "GB")
		require.NoError(t, err)
		us, err := f.companies.GetOrCreate("12345678", "US")
		require.NoError(t, err)

		require.NotNil(t, gb)
		require.NotNil(t, us)
		assert.NotEqual(t, gb.ID, us.ID)
		assert.Equal(t, "US", us.CountryCode)
	})
}

// staleCompanyRepo misses the first lookups, like a reader that raced a
// concurrent insert of the same company.
type staleCompanyRepo struct {
	*repository.DefaultCompanyRepository
	misses int
}

func (r *staleCompanyRepo) FindByNumberAndCountry(number, countryCode string) (*entity.Company, error) {
	if r.misses > 0 {
		r.misses--
		return nil, nil
	}
	return r.DefaultCompanyRepository.FindByNumberAndCountry(number, countryCode)
}

func TestConcurrentCreation(t *testing.T) {
	t.Run("GetOrCreate returns the row that won the insert", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)
		winner := testutil.SeedCompany(t, f.db, "12345678", "GB")
		f.companies.CompanyRepo = &staleCompanyRepo{DefaultCompanyRepository: repository.NewCompanyRepository(f.db), misses: 1}

		company, err := f.companies.GetOrCreate("12345678", "GB")
		require.NoError(t, err)
		require.NotNil(t, company)
		assert.Equal(t, winner.ID, company.ID)
		assert.Equal(t, 0.0, promtestutil.ToFloat64(f.metrics.CompaniesCreated))
	})

	t.Run("CreateIfNotExists refuses when the insert collides", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)
		testutil.SeedCompany(t, f.db, "12345678", "GB")
		f.companies.CompanyRepo = &staleCompanyRepo{DefaultCompanyRepository: repository.NewCompanyRepository(f.db), misses: 1}

		company, err := f.companies.CreateIfNotExists("12345678", "GB", "Acme Ltd")
		require.NoError(t, err)
		assert.Nil(t, company)

		all, err := f.companies.CompanyRepo.FindAll(0, 100)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestFindInCountry(t *testing.T) {
	f := newFixture(t)
	testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)
	testutil.SeedCountry(t, f.db, "US", "United States", entity.MatchAnyRegex)
	seeded := testutil.SeedCompany(t, f.db, "12345678", "GB")

	found, err := f.companies.FindInCountry("12345678", "GB")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, seeded.ID, found.ID)

	other, err := f.companies.FindInCountry("12345678", "US")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestCreateIfNotExists(t *testing.T) {
	t.Run("is not idempotent", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)

		first, err := f.companies.CreateIfNotExists("12345678", "GB", "Acme Ltd")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, "Acme Ltd", first.Name)

		second, err := f.companies.CreateIfNotExists("12345678", "GB", "Acme Ltd")
		require.NoError(t, err)
		assert.Nil(t, second)
	})

	t.Run("defaults the name", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "US", "United States", entity.MatchAnyRegex)

		company, err := f.companies.CreateIfNotExists("C0001", "US", "")
		require.NoError(t, err)
		require.NotNil(t, company)
		assert.Equal(t, entity.DefaultCompanyName, company.Name)
	})

	t.Run("allows the same number in another country", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)
		testutil.SeedCountry(t, f.db, "US", "United States", entity.MatchAnyRegex)
		testutil.SeedCompany(t, f.db, "12345678", "GB")

		company, err := f.companies.CreateIfNotExists("12345678", "US", "")
		require.NoError(t, err)
		assert.NotNil(t, company)
	})

	t.Run("refuses unknown countries and invalid numbers", func(t *testing.T) {
		f := newFixture(t)
		testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)

		company, err := f.companies.CreateIfNotExists("12345678", "FR", "")
		require.NoError(t, err)
		assert.Nil(t, company)

		company, err = f.companies.CreateIfNotExists("123", "GB", "")
		require.NoError(t, err)
		assert.Nil(t, company)
	})
}

func TestRegisterCompany(t *testing.T) {
	f := newFixture(t)
	testutil.SeedCountry(t, f.db, "GB", "United Kingdom", gbPattern)

	resp, apierr := f.companies.RegisterCompany(&contract.CompanyRequest{CompanyNumber: "SC123456", CountryCode: "GB"})
	require.Nil(t, apierr)
	assert.Equal(t, "SC123456", resp.CompanyNumber)
	assert.Equal(t, "GB", resp.CountryCode)
	assert.Equal(t, entity.DefaultCompanyName, resp.Name)

	_, apierr = f.companies.RegisterCompany(&contract.CompanyRequest{CompanyNumber: "SC123456", CountryCode: "GB"})
	assert.Equal(t, apierror.CompanyCreationError, apierr)

	_, apierr = f.companies.RegisterCompany(&contract.CompanyRequest{CompanyNumber: "SC123456", CountryCode: "gb"})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())

	list, apierr := f.companies.GetCompanies(contract.DefaultPagination())
	require.Nil(t, apierr)
	assert.Len(t, list, 1)
}
