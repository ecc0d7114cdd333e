package contract

// Financials holds the yearly figures a solvency score is calculated from.
type Financials struct {
	Year             int     `json:"year"`
	EBIT             float64 `json:"ebit"`
	Equity           float64 `json:"equity"`
	RetainedEarnings float64 `json:"retained_earnings"`
	Sales            float64 `json:"sales"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	WorkingCapital   float64 `json:"working_capital"`
}

// FinancialsInput is a yearly record as it arrives in a request. Pointers tell
// a missing figure apart from a zero one, every figure must be present.
type FinancialsInput struct {
	Year             *int     `json:"year" validate:"required"`
	EBIT             *float64 `json:"ebit" validate:"required"`
	Equity           *float64 `json:"equity" validate:"required"`
	RetainedEarnings *float64 `json:"retained_earnings" validate:"required"`
	Sales            *float64 `json:"sales" validate:"required"`
	TotalAssets      *float64 `json:"total_assets" validate:"required"`
	TotalLiabilities *float64 `json:"total_liabilities" validate:"required"`
	WorkingCapital   *float64 `json:"working_capital" validate:"required"`
}

// Financials must only be called on a validated input.
func (in FinancialsInput) Financials() Financials {
	return Financials{
		Year:             *in.Year,
		EBIT:             *in.EBIT,
		Equity:           *in.Equity,
		RetainedEarnings: *in.RetainedEarnings,
		Sales:            *in.Sales,
		TotalAssets:      *in.TotalAssets,
		TotalLiabilities: *in.TotalLiabilities,
		WorkingCapital:   *in.WorkingCapital,
	}
}

type FinancialsRequest struct {
	Financials []FinancialsInput `json:"financials" validate:"required,min=1,max=500,dive"`
}

// Values returns the records of a validated request, in request order.
func (r *FinancialsRequest) Values() []Financials {
	values := make([]Financials, len(r.Financials))
	for i, in := range r.Financials {
		values[i] = in.Financials()
	}
	return values
}

// ScoreResult is what a calculation returns, independent of how the score is stored.
type ScoreResult struct {
	Year   int     `json:"year"`
	ZScore float64 `json:"zscore"`
}

type ScoreResponse struct {
	ID        int64   `json:"id"`
	Year      int     `json:"year"`
	ZScore    float64 `json:"zscore"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
