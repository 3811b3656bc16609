package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-contacts/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"omitempty,contains=@"`
}

func (s *sample) Validate() error {
	return Struct(s)
}

type decidesOwnError struct{}

func (decidesOwnError) Validate() error {
	return errs.NewBadRequestError("Missing id parameter", errs.Code(errs.CodeMissingID), nil)
}

type customRule struct {
	Name string `json:"name"`
}

func (c *customRule) Validate() error {
	return CustomValidationErrors{{Field: "name", Message: "is reserved"}}
}

func newContext(method, body string) echo.Context {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		payload := &sample{}
		require.NoError(t, BindAndValidate(newContext(http.MethodPost, `{"fullName":"John","email":"a@b"}`), payload))
		assert.Equal(t, "John", payload.FullName)
	})

	t.Run("field errors use json names", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"email":"ab"}`), &sample{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "fullName", Error: "is required"},
			{Field: "email", Error: "must contain '@'"},
		}, httpErr.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"fullName":`), &sample{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "BAD_REQUEST", httpErr.Code)
		assert.NotEmpty(t, httpErr.Message)
	})

	t.Run("http errors pass through", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodGet, ""), &decidesOwnError{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, errs.CodeMissingID, httpErr.Code)
	})

	t.Run("custom errors", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"name":"admin"}`), &customRule{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is reserved"}}, httpErr.Errors)
	})
}

func TestFailedOn(t *testing.T) {
	err := Struct(&sample{Email: "ab"})
	assert.True(t, FailedOn(err, "required"))
	assert.True(t, FailedOn(err, "contains"))
	assert.False(t, FailedOn(err, "oneof"))
	assert.False(t, FailedOn(nil, "required"))
}
