package storeerr

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/go-contacts/internal/database"
	"github.com/deppfellow/go-contacts/internal/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// dupKeyField pulls the first key name out of an E11000 message:
//
//	E11000 duplicate key error collection: test.Contacts index: email_1 dup key: { email: "a@b" }
var dupKeyField = regexp.MustCompile(`dup key: \{ ?"?(\w+)"?:`)

// ErrCode reports the mapped Code for a given error.
//
// If err can be unwrapped into *Error its Code is returned, otherwise Other.
func ErrCode(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return Other
}

// Convert classifies a driver error for the given collection.
//
// It returns nil for a nil error. Errors that are already classified are
// returned unchanged.
func Convert(err error, collection string) error {
	if err == nil {
		return nil
	}

	var storeErr *Error
	if errors.As(err, &storeErr) {
		return err
	}

	classified := &Error{
		Code:       Other,
		Collection: collection,
		Message:    err.Error(),
		driverErr:  err,
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		classified.Code = NoDocuments
	case errors.Is(err, ErrInvalidID), errors.Is(err, primitive.ErrInvalidHex):
		classified.Code = InvalidID
	case mongo.IsDuplicateKeyError(err):
		classified.Code = DuplicateKey
		if m := dupKeyField.FindStringSubmatch(err.Error()); len(m) > 1 {
			classified.Field = m[1]
		}
	case errors.Is(err, database.ErrUninitialized):
		classified.Code = Uninitialized
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		classified.Code = Timeout
	case mongo.IsNetworkError(err):
		classified.Code = Network
	}

	return classified
}

// NotFound builds a NoDocuments error for an operation that matched nothing
// without the driver returning an error (e.g. UpdateOne with MatchedCount 0).
func NotFound(collection string) error {
	return &Error{
		Code:       NoDocuments,
		Collection: collection,
		Message:    "no documents matched the filter",
		driverErr:  mongo.ErrNoDocuments,
	}
}

// HandleError converts a store error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - NoDocuments: 404 <ENTITY>_NOT_FOUND
//   - InvalidID: 400 <ENTITY>_INVALID_ID
//   - DuplicateKey: 400 <ENTITY>_ALREADY_EXISTS
//   - anything else: 500, details are never leaked to the client
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var storeErr *Error
	if !errors.As(Convert(err, ""), &storeErr) {
		return errs.NewInternalServerError()
	}

	errorCode := generateErrorCode(storeErr.Collection, storeErr.Code)
	userMessage := formatUserFriendlyMessage(storeErr)

	switch storeErr.Code {
	case NoDocuments:
		return errs.NewNotFoundError(userMessage, &errorCode)

	case InvalidID:
		return errs.NewBadRequestError(userMessage, &errorCode, nil)

	case DuplicateKey:
		var fieldErrors []errs.FieldError
		if storeErr.Field != "" {
			fieldErrors = []errs.FieldError{{Field: storeErr.Field, Error: "already exists"}}
		}
		return errs.NewBadRequestError(userMessage, &errorCode, fieldErrors)

	default:
		return errs.NewInternalServerError()
	}
}

// generateErrorCode creates application error codes of the form
// <DOMAIN>_<ACTION>, e.g. Contacts + NoDocuments => CONTACT_NOT_FOUND.
func generateErrorCode(collection string, code Code) string {
	if collection == "" {
		collection = "RECORD"
	}

	domain := strings.ToUpper(collection)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch code {
	case NoDocuments:
		action = "NOT_FOUND"
	case InvalidID:
		action = "INVALID_ID"
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(storeErr *Error) string {
	entityName := getEntityName(storeErr.Collection)

	switch storeErr.Code {
	case NoDocuments:
		return fmt.Sprintf("%s not found", entityName)

	case InvalidID:
		return "Invalid ID format"

	case DuplicateKey:
		fieldName := humanizeText(storeErr.Field)
		if fieldName == "" {
			fieldName = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", strings.ToLower(entityName), fieldName)

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName singularizes and title-cases a collection name.
// "Contacts" -> "Contact", "" -> "Resource".
func getEntityName(collection string) string {
	if collection == "" {
		return "Resource"
	}

	entity := collection
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case or camelCase identifiers into Title Case.
//
//	"favorite_color" -> "Favorite Color"
//	"favoriteColor"  -> "Favorite Color"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range text {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	return cases.Title(language.English).String(strings.ReplaceAll(b.String(), "_", " "))
}
