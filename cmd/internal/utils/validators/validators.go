package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"reflect"
	"regexp"
	"strings"
)

var (
	countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)
	hasSpaces        = regexp.MustCompile(`\s+`)
)

// Register installs every custom tag used by the request contracts and makes
// validation errors report JSON field names.
func Register(validate *validator.Validate) {
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("countrycode", CountryCode)
	_ = validate.RegisterValidation("regexp", CompilableRegex)
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return fld.Name
	}
	return name
}

// IsCountryCode reports whether code is an alpha-2 ISO code written in capitals.
func IsCountryCode(code string) bool {
	return countryCodeRegex.MatchString(code)
}

func CountryCode(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return IsCountryCode(val)
}

// CompilableRegex rejects patterns that cannot be used to validate company numbers later.
func CompilableRegex(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := regexp.Compile(val)
	return err == nil
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'nospaces' applied to non-string type: %s", field.Kind().String())
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}
