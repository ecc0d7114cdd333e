package handler

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/utils/apierror"
)

type ScoreService interface {
	SubmitFinancials(countryCode, number string, req *contract.FinancialsRequest) ([]*contract.ScoreResult, apierror.ErrorResponse)
	GetScores(countryCode, number string, page contract.Pagination) ([]*contract.ScoreResponse, apierror.ErrorResponse)
}

type DefaultScoreRoute struct {
	ScoreService ScoreService
}

func NewScoreDefault(scoreService ScoreService) *DefaultScoreRoute {
	return &DefaultScoreRoute{ScoreService: scoreService}
}

func (r *DefaultScoreRoute) CalculateScores(c echo.Context) error {
	code, perr := countryCodeParam(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	number := strings.TrimSpace(c.Param("company_number"))

	var req contract.FinancialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	scores, apierr := r.ScoreService.SubmitFinancials(code, number, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"scores": scores}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultScoreRoute) GetScores(c echo.Context) error {
	code, perr := countryCodeParam(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	number := strings.TrimSpace(c.Param("company_number"))

	page, perr := parsePagination(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	scores, apierr := r.ScoreService.GetScores(code, number, page)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"scores": scores}
	return c.JSON(http.StatusOK, &resp)
}
