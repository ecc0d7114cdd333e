package apierror

import (
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"max=3"`
}

func TestFromValidationError(t *testing.T) {
	err := validator.New().Struct(&sample{Count: 5})
	require.Error(t, err)

	serr := FromValidationError(err)
	assert.Equal(t, http.StatusBadRequest, serr.Code())
	assert.Equal(t, []string{"This field is required"}, serr.Errors["name"])
	assert.Equal(t, []string{"Value is too long, max: 3"}, serr.Errors["count"])
}

func TestNewSimpleFormats(t *testing.T) {
	err := NewInvalidParamTypeError("limit", "int")
	assert.Equal(t, http.StatusBadRequest, err.Code())
	assert.Equal(t, "Parameter 'limit' has invalid type, expected: int", err.Message)
}
