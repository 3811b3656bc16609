// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations (like stamping timestamps), and calls
// repository methods to interact with the data.
package service

import (
	"github.com/deppfellow/go-contacts/internal/repository"
	"github.com/deppfellow/go-contacts/internal/server"
)

type Services struct {
	Contacts *ContactService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Contacts: NewContactService(s, repos.Contacts),
	}
}
