package handler

import (
	"github.com/deppfellow/go-contacts/internal/model"
	"github.com/deppfellow/go-contacts/internal/server"
	"github.com/deppfellow/go-contacts/internal/service"
	"github.com/labstack/echo/v4"
)

// ContactHandler serves the contacts resource. Requests arrive bound and
// validated; every store outcome is returned as an error for the global
// error handler to map.
type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

// ListContacts returns every contact in store order.
func (h *ContactHandler) ListContacts(c echo.Context, _ *model.ListContactsRequest) ([]model.Contact, error) {
	return h.contacts.List(c.Request().Context())
}

func (h *ContactHandler) GetContact(c echo.Context, req *model.GetContactRequest) (*model.Contact, error) {
	return h.contacts.Get(c.Request().Context(), req.ID)
}

func (h *ContactHandler) CreateContact(c echo.Context, req *model.CreateContactRequest) (*model.CreateContactResponse, error) {
	contact, err := h.contacts.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	return &model.CreateContactResponse{
		ID:      contact.ID.Hex(),
		Message: model.MsgCreated,
	}, nil
}

func (h *ContactHandler) UpdateContact(c echo.Context, req *model.UpdateContactRequest) (*model.MessageResponse, error) {
	if err := h.contacts.Update(c.Request().Context(), req.ID, req.Update()); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: model.MsgUpdated}, nil
}

func (h *ContactHandler) DeleteContact(c echo.Context, req *model.DeleteContactRequest) error {
	return h.contacts.Delete(c.Request().Context(), req.ID)
}
