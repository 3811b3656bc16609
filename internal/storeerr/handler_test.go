package storeerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-contacts/internal/database"
	"github.com/deppfellow/go-contacts/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvert(t *testing.T) {
	dup := &mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{
			Code:    11000,
			Message: `E11000 duplicate key error collection: test.Contacts index: email_1 dup key: { email: "a@b" }`,
		}},
	}
	_, hexErr := primitive.ObjectIDFromHex("nope")

	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"no documents", mongo.ErrNoDocuments, NoDocuments},
		{"wrapped no documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), NoDocuments},
		{"invalid id sentinel", ErrInvalidID, InvalidID},
		{"invalid hex", hexErr, InvalidID},
		{"duplicate key", dup, DuplicateKey},
		{"uninitialized", database.ErrUninitialized, Uninitialized},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"other", errors.New("boom"), Other},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Convert(tc.err, "Contacts")
			assert.Equal(t, tc.want, ErrCode(err))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, Convert(nil, "Contacts"))
	})

	t.Run("duplicate key field", func(t *testing.T) {
		var storeErr *Error
		require.ErrorAs(t, Convert(dup, "Contacts"), &storeErr)
		assert.Equal(t, "email", storeErr.Field)
	})

	t.Run("already classified", func(t *testing.T) {
		first := Convert(mongo.ErrNoDocuments, "Contacts")
		assert.Same(t, first, Convert(first, "Other"))
	})
}

func TestHandleError(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(NotFound("Contacts")))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "CONTACT_NOT_FOUND", httpErr.Code)
		assert.Equal(t, "Contact not found", httpErr.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(fmt.Errorf("service: %w", Convert(ErrInvalidID, "Contacts"))))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "CONTACT_INVALID_ID", httpErr.Code)
		assert.Equal(t, "Invalid ID format", httpErr.Message)
	})

	t.Run("duplicate key", func(t *testing.T) {
		storeErr := &Error{Code: DuplicateKey, Collection: "Contacts", Field: "email"}
		httpErr := asHTTPError(t, HandleError(storeErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "CONTACT_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A contact with this Email already exists", httpErr.Message)
		assert.Equal(t, []errs.FieldError{{Field: "email", Error: "already exists"}}, httpErr.Errors)
	})

	t.Run("internal failures are not leaked", func(t *testing.T) {
		for _, err := range []error{
			errors.New("connection reset by peer"),
			Convert(database.ErrUninitialized, "Contacts"),
			Convert(context.DeadlineExceeded, "Contacts"),
		} {
			httpErr := asHTTPError(t, HandleError(err))
			assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
			assert.Equal(t, "Internal Server Error", httpErr.Message)
		}
	})

	t.Run("http errors pass through", func(t *testing.T) {
		original := errs.NewBadRequestError("Missing id parameter", errs.Code(errs.CodeMissingID), nil)
		assert.Same(t, original, HandleError(original))
	})
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "Favorite Color", humanizeText("favoriteColor"))
	assert.Equal(t, "First Name", humanizeText("first_name"))
	assert.Equal(t, "", humanizeText(""))
	assert.Equal(t, "Contact", getEntityName("Contacts"))
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}
