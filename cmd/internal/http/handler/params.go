package handler

import (
	"github.com/labstack/echo/v4"
	"math"
	"strconv"
	"strings"
	"zscore/cmd/internal/contract"
	"zscore/cmd/internal/utils/apierror"
	"zscore/cmd/internal/utils/validators"
)

// parsePagination reads the "skip" and "limit" query parameters, falling back
// to the defaults when absent.
func parsePagination(c echo.Context) (contract.Pagination, *apierror.APIError) {
	page := contract.DefaultPagination()

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return page, apierror.NewInvalidParamTypeError("skip", "int")
		}

		if skip < 0 {
			return page, apierror.NewInvalidParamRangeError("skip", 0, math.MaxInt32)
		}
		page.Offset = skip
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, apierror.NewInvalidParamTypeError("limit", "int")
		}

		if limit < 1 || limit > contract.MaxPageLimit {
			return page, apierror.NewInvalidParamRangeError("limit", 1, contract.MaxPageLimit)
		}
		page.Limit = limit
	}
	return page, nil
}

// countryCodeParam rejects malformed codes before they reach the services.
func countryCodeParam(c echo.Context) (string, *apierror.APIError) {
	code := strings.TrimSpace(c.Param("iso_code"))
	if !validators.IsCountryCode(code) {
		return "", apierror.InvalidCountryCodeError
	}
	return code, nil
}
