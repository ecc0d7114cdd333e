package apierror

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	InvalidCountryCodeError = NewSimple(400, "Country code must be a valid (alpha 2) ISO code, capitals only")

	/*
	 * Countries
	 */
	CountryNotFoundError = NewSimple(404, "Country not found.")
	CountryExistsError   = NewSimple(400, "Country exists in database. Duplicates not permitted.")

	/*
	 * Companies and scores
	 */
	CompanyCreationError = NewSimple(400, "Failed to create company because one of the following is true: "+
		"1) company exists, 2) country doesn't exist, 3) or company number violates the country's "+
		"formatting rules for company numbers.")
	CompanyResolutionError = NewSimple(400, "Failed to retrieve existing and create new company because the "+
		"country doesn't exist or the company number violates the country's formatting rules for company numbers.")
	CompanyNotFoundError = NewSimple(404, "Company does not exist. Please verify that you have entered the "+
		"correct country_iso_code and company_number.")
	InvalidFinancialsError = NewSimple(400, "Invalid financials provided. Financials contain 0 values for at "+
		"least one of the denominators in Altman's Z-Score (total_assets or total_liabilities).")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return NewStructured(http.StatusBadRequest)
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "countrycode":
			problems[field] = append(problems[field], "Value must be a valid (alpha 2) ISO code, capitals only")
		case "regexp":
			problems[field] = append(problems[field], "Value must be a valid regular expression")
		case "nospaces":
			problems[field] = append(problems[field], "Value must not contain whitespaces")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewInvalidParamRangeError(name string, min, max int) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' must be in range of [%d - %d]", name, min, max)
}
