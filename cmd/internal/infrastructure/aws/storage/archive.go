package storage

import (
	"encoding/json"
	"github.com/google/uuid"
	"net/url"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/utils"
)

const PathFinancials = "financials/"

type financialsDocument struct {
	CountryCode   string                  `json:"country_alpha_2_iso_code"`
	CompanyNumber string                  `json:"company_number"`
	SubmittedAt   string                  `json:"submitted_at"`
	Financials    []contract.Financials   `json:"financials"`
	Scores        []*contract.ScoreResult `json:"scores"`
}

// FinancialsArchive keeps a copy of every accepted financials batch in S3.
type FinancialsArchive struct {
	client S3Client
}

// NewFinancialsArchive wraps the client. A nil client disables archiving.
func NewFinancialsArchive(client S3Client) *FinancialsArchive {
	return &FinancialsArchive{client: client}
}

func (a *FinancialsArchive) Enabled() bool {
	return a.client != nil
}

// Archive uploads the batch together with the scores calculated from it and
// returns the object key, or an empty key when archiving is disabled.
func (a *FinancialsArchive) Archive(countryCode, companyNumber string, financials []contract.Financials, scores []*contract.ScoreResult) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	doc := financialsDocument{
		CountryCode:   countryCode,
		CompanyNumber: companyNumber,
		SubmittedAt:   utils.FormatEpoch(utils.NowUTC()),
		Financials:    financials,
		Scores:        scores,
	}

	data, err := json.Marshal(&doc)
	if err != nil {
		return "", err
	}
	return a.client.UploadFile(data, ArchiveKey(countryCode, companyNumber, uuid.NewString()))
}

func ArchiveKey(countryCode, companyNumber, id string) string {
	return PathFinancials + countryCode + "/" + url.PathEscape(companyNumber) + "/" + id + ".json"
}
