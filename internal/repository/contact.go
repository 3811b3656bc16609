package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/go-contacts/internal/database"
	"github.com/deppfellow/go-contacts/internal/model"
	"github.com/deppfellow/go-contacts/internal/storeerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository stores contacts in the Contacts collection.
type ContactRepository struct {
	db *database.Database
}

var _ ContactStore = (*ContactRepository)(nil)

func NewContactRepository(db *database.Database) *ContactRepository {
	return &ContactRepository{db: db}
}

// collection resolves the collection per call so a repository can be built
// before the connection is initialized.
func (r *ContactRepository) collection() (*mongo.Collection, error) {
	coll, err := r.db.Collection(model.ContactsCollection)
	if err != nil {
		return nil, storeerr.Convert(err, model.ContactsCollection)
	}
	return coll, nil
}

// parseID converts a client supplied identifier into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storeerr.Convert(
			fmt.Errorf("%w: %q: %w", storeerr.ErrInvalidID, id, err), model.ContactsCollection)
	}
	return oid, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeerr.Convert(err, model.ContactsCollection)
	}

	contacts := make([]model.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, storeerr.Convert(err, model.ContactsCollection)
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}

	return contacts, nil
}

func (r *ContactRepository) Get(ctx context.Context, id string) (*model.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var contact model.Contact
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&contact); err != nil {
		return nil, storeerr.Convert(err, model.ContactsCollection)
	}

	return &contact, nil
}

// Create inserts contact and sets its ID.
func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) (primitive.ObjectID, error) {
	coll, err := r.collection()
	if err != nil {
		return primitive.NilObjectID, err
	}

	result, err := coll.InsertOne(ctx, contact)
	if err != nil {
		return primitive.NilObjectID, storeerr.Convert(err, model.ContactsCollection)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, storeerr.Convert(
			errors.New("inserted id is not an ObjectID"), model.ContactsCollection)
	}

	contact.ID = oid
	return oid, nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, update model.ContactUpdate) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	coll, err := r.collection()
	if err != nil {
		return err
	}

	result, err := coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: update.SetFields()}},
	)
	if err != nil {
		return storeerr.Convert(err, model.ContactsCollection)
	}

	if result.MatchedCount == 0 {
		return storeerr.NotFound(model.ContactsCollection)
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	coll, err := r.collection()
	if err != nil {
		return err
	}

	result, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return storeerr.Convert(err, model.ContactsCollection)
	}

	if result.DeletedCount == 0 {
		return storeerr.NotFound(model.ContactsCollection)
	}

	return nil
}
