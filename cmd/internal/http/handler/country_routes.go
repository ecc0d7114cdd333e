package handler

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/utils/apierror"
)

type CountryService interface {
	GetCountries(page contract.Pagination) ([]*contract.CountryResponse, apierror.ErrorResponse)
	GetCountry(code string) (*contract.CountryResponse, apierror.ErrorResponse)
	RegisterCountry(req *contract.CountryRequest) (*contract.CountryResponse, apierror.ErrorResponse)
}

type DefaultCountryRoute struct {
	CountryService CountryService
}

func NewCountryDefault(countryService CountryService) *DefaultCountryRoute {
	return &DefaultCountryRoute{CountryService: countryService}
}

func (r *DefaultCountryRoute) GetCountries(c echo.Context) error {
	page, perr := parsePagination(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	countries, apierr := r.CountryService.GetCountries(page)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, countries)
}

func (r *DefaultCountryRoute) GetCountry(c echo.Context) error {
	code, perr := countryCodeParam(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	country, apierr := r.CountryService.GetCountry(code)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, country)
}

func (r *DefaultCountryRoute) CreateCountry(c echo.Context) error {
	var req contract.CountryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	country, apierr := r.CountryService.RegisterCountry(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, country)
}
