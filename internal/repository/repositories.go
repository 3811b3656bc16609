// Package repository handles all interactions with the database.
//
// It runs the store operations (find, insert, update, delete) and turns
// driver errors into classified store errors, so the service layer never
// touches the driver directly.
package repository

import (
	"context"

	"github.com/deppfellow/go-contacts/internal/model"
	"github.com/deppfellow/go-contacts/internal/server"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStore is the persistence contract for contacts.
//
// Identifiers are passed as received from the client; implementations
// report malformed ones as storeerr.InvalidID and unknown ones as
// storeerr.NoDocuments.
type ContactStore interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id string) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, update model.ContactUpdate) error
	Delete(ctx context.Context, id string) error
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Contacts ContactStore
}

// NewRepositories constructs the repository container backed by the
// server's database connection.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Contacts: NewContactRepository(s.DB),
	}
}

// NewInmemRepositories constructs a repository container that keeps
// everything in memory. Used by tests.
func NewInmemRepositories(contacts ...*model.Contact) *Repositories {
	return &Repositories{
		Contacts: NewContactInmem(contacts...),
	}
}
