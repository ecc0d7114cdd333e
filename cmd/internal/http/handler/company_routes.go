package handler

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/utils/apierror"
)

type CompanyService interface {
	GetCompanies(page contract.Pagination) ([]*contract.CompanyResponse, apierror.ErrorResponse)
	RegisterCompany(req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (r *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	page, perr := parsePagination(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	companies, apierr := r.CompanyService.GetCompanies(page)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, companies)
}

func (r *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := r.CompanyService.RegisterCompany(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, company)
}
