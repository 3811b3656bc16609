package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/go-contacts/internal/model"
	"github.com/deppfellow/go-contacts/internal/repository"
	"github.com/deppfellow/go-contacts/internal/server"
	"github.com/rs/zerolog"
)

// ContactService orchestrates contact operations. Each operation is a
// single store call.
type ContactService struct {
	server   *server.Server
	contacts repository.ContactStore

	// now is the clock used for createdAt/updatedAt.
	now func() time.Time

	mu   sync.Mutex
	last time.Time
}

func NewContactService(s *server.Server, contacts repository.ContactStore) *ContactService {
	return &ContactService{
		server:   s,
		contacts: contacts,
		now:      time.Now,
	}
}

// timestamp returns the current time in UTC, truncated to the precision
// the store keeps. Stamps issued by one service never repeat: a write in
// the same millisecond as the previous one is pushed 1ms past it.
func (s *ContactService) timestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now().UTC().Truncate(time.Millisecond)
	if !t.After(s.last) {
		t = s.last.Add(time.Millisecond)
	}
	s.last = t
	return t
}

// logger returns the request-scoped logger, falling back to the
// application logger outside of a request.
func (s *ContactService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}

func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, id string) (*model.Contact, error) {
	contact, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact %q: %w", id, err)
	}
	return contact, nil
}

// Create stores a new contact. createdAt and updatedAt share one timestamp.
func (s *ContactService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	now := s.timestamp()

	contact := &model.Contact{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		FavoriteColor: req.FavoriteColor,
		Birthday:      req.Birthday,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger(ctx).Info().
		Str("contact_id", contact.ID.Hex()).
		Msg("contact created")

	return contact, nil
}

// Update applies the supplied fields and refreshes updatedAt.
func (s *ContactService) Update(ctx context.Context, id string, update model.ContactUpdate) error {
	update.UpdatedAt = s.timestamp()

	if err := s.contacts.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update contact %q: %w", id, err)
	}

	s.logger(ctx).Info().
		Str("contact_id", id).
		Msg("contact updated")

	return nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact %q: %w", id, err)
	}

	s.logger(ctx).Info().
		Str("contact_id", id).
		Msg("contact deleted")

	return nil
}
