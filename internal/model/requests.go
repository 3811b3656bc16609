package model

import (
	"github.com/deppfellow/go-contacts/internal/errs"
	"github.com/deppfellow/go-contacts/internal/validation"
)

const (
	MsgMissingID      = "Missing id parameter"
	MsgMissingFields  = "All fields are required: firstName, lastName, email, favoriteColor, birthday"
	MsgInvalidEmail   = "Invalid email format"
	MsgNoUpdateFields = "At least one field must be provided for update"
	MsgCreated        = "Contact created successfully"
	MsgUpdated        = "Contact updated successfully"
)

func missingIDError() error {
	return errs.NewBadRequestError(MsgMissingID, errs.Code(errs.CodeMissingID),
		[]errs.FieldError{{Field: "id", Error: "is required"}})
}

// ListContactsRequest has no parameters.
type ListContactsRequest struct{}

func (r *ListContactsRequest) Validate() error {
	return nil
}

// GetContactRequest is GET /contact?id=<id>.
type GetContactRequest struct {
	ID string `query:"id" json:"-"`
}

func (r *GetContactRequest) Validate() error {
	if r.ID == "" {
		return missingIDError()
	}
	return nil
}

// CreateContactRequest is the body of POST /contacts.
type CreateContactRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,contains=@"`
	FavoriteColor string `json:"favoriteColor" validate:"required"`
	Birthday      string `json:"birthday" validate:"required"`
}

// Validate rejects missing fields before checking the email format, so a
// request with both problems reports MISSING_FIELDS.
func (r *CreateContactRequest) Validate() error {
	err := validation.Struct(r)
	if err == nil {
		return nil
	}

	if validation.FailedOn(err, "required") {
		return errs.NewBadRequestError(MsgMissingFields, errs.Code(errs.CodeMissingFields), validation.FieldErrors(err))
	}
	if validation.FailedOn(err, "contains") {
		return errs.NewBadRequestError(MsgInvalidEmail, errs.Code(errs.CodeInvalidEmail), validation.FieldErrors(err))
	}
	return err
}

// UpdateContactRequest is PUT /contacts/:id. Every body field is optional,
// but at least one must be supplied.
type UpdateContactRequest struct {
	ID            string `param:"id" json:"-"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" validate:"omitempty,contains=@"`
	FavoriteColor string `json:"favoriteColor"`
	Birthday      string `json:"birthday"`
}

func (r *UpdateContactRequest) Validate() error {
	if r.ID == "" {
		return missingIDError()
	}

	if !r.Update().HasChanges() {
		return errs.NewBadRequestError(MsgNoUpdateFields, errs.Code(errs.CodeNoUpdateFields), nil)
	}

	if err := validation.Struct(r); err != nil {
		return errs.NewBadRequestError(MsgInvalidEmail, errs.Code(errs.CodeInvalidEmail), validation.FieldErrors(err))
	}

	return nil
}

// Update converts the request into a store update. UpdatedAt is stamped by
// the service.
func (r *UpdateContactRequest) Update() ContactUpdate {
	return ContactUpdate{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		FavoriteColor: r.FavoriteColor,
		Birthday:      r.Birthday,
	}
}

// DeleteContactRequest is DELETE /contacts/:id.
type DeleteContactRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *DeleteContactRequest) Validate() error {
	if r.ID == "" {
		return missingIDError()
	}
	return nil
}

// CreateContactResponse is returned by POST /contacts.
type CreateContactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
