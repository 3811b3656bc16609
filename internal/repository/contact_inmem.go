package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/deppfellow/go-contacts/internal/model"
	"github.com/deppfellow/go-contacts/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactInmem implements [ContactStore] in memory, in insertion order.
//
// Identifiers and errors behave like ContactRepository. Returned contacts
// are copies.
type ContactInmem struct {
	mu       sync.Mutex
	index    map[primitive.ObjectID]int
	contacts []*model.Contact
}

var _ ContactStore = (*ContactInmem)(nil)

func NewContactInmem(cs ...*model.Contact) *ContactInmem {
	s := &ContactInmem{contacts: cs}
	s.reindex()
	return s
}

func (s *ContactInmem) reindex() {
	s.index = make(map[primitive.ObjectID]int, len(s.contacts))
	for i, c := range s.contacts {
		s.index[c.ID] = i
	}
}

func (s *ContactInmem) List(_ context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, *c)
	}
	return contacts, nil
}

func (s *ContactInmem) Get(_ context.Context, id string) (*model.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[oid]
	if !ok {
		return nil, storeerr.NotFound(model.ContactsCollection)
	}
	contact := *s.contacts[i]
	return &contact, nil
}

func (s *ContactInmem) Create(_ context.Context, contact *model.Contact) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = primitive.NewObjectID()
	stored := *contact

	s.index[stored.ID] = len(s.contacts)
	s.contacts = append(s.contacts, &stored)
	return stored.ID, nil
}

func (s *ContactInmem) Update(_ context.Context, id string, update model.ContactUpdate) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[oid]
	if !ok {
		return storeerr.NotFound(model.ContactsCollection)
	}
	update.Apply(s.contacts[i])
	return nil
}

func (s *ContactInmem) Delete(_ context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[oid]
	if !ok {
		return storeerr.NotFound(model.ContactsCollection)
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	s.reindex()
	return nil
}
