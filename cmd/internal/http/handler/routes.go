package handler

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

type Routes struct {
	Countries *DefaultCountryRoute
	Companies *DefaultCompanyRoute
	Scores    *DefaultScoreRoute
}

func (r *Routes) Register(e *echo.Echo) {
	// Countries
	e.GET("/country", r.Countries.GetCountries)
	e.GET("/country/:iso_code", r.Countries.GetCountry)
	e.POST("/country", r.Countries.CreateCountry)

	// Companies
	e.GET("/company", r.Companies.GetCompanies)
	e.POST("/company", r.Companies.CreateCompany)

	// Scores
	e.POST("/company/:iso_code/:company_number", r.Scores.CalculateScores)
	e.GET("/company/:iso_code/:company_number", r.Scores.GetScores)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
