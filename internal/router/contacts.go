package router

import (
	"net/http"

	"github.com/deppfellow/go-contacts/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerContactRoutes registers the contacts resource.
//
// Single contacts are read with a query parameter (GET /contact?id=) and
// written with a path parameter. PUT and DELETE are also registered without
// an id so those requests get a 400 "Missing id parameter" instead of a
// 404 route miss.
func registerContactRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/contacts", handler.Handle(h.Contact.ListContacts, http.StatusOK))
	r.GET("/contact", handler.Handle(h.Contact.GetContact, http.StatusOK))
	r.POST("/contacts", handler.Handle(h.Contact.CreateContact, http.StatusCreated))

	update := handler.Handle(h.Contact.UpdateContact, http.StatusOK)
	r.PUT("/contacts/:id", update)
	r.PUT("/contacts", update)

	remove := handler.HandleNoContent(h.Contact.DeleteContact, http.StatusNoContent)
	r.DELETE("/contacts/:id", remove)
	r.DELETE("/contacts", remove)
}
