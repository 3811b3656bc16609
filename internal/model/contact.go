package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactsCollection is the collection contacts are stored in.
const ContactsCollection = "Contacts"

// Contact is a stored contact document.
//
// ID is assigned by the store on insert and serialized as a 24-character
// hex string. Timestamps are UTC with millisecond precision.
type Contact struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName     string             `json:"firstName" bson:"firstName"`
	LastName      string             `json:"lastName" bson:"lastName"`
	Email         string             `json:"email" bson:"email"`
	FavoriteColor string             `json:"favoriteColor" bson:"favoriteColor"`
	Birthday      string             `json:"birthday" bson:"birthday"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ContactUpdate is a partial update. Empty strings mean "not supplied" and
// are left untouched; UpdatedAt is always written.
type ContactUpdate struct {
	FirstName     string
	LastName      string
	Email         string
	FavoriteColor string
	Birthday      string
	UpdatedAt     time.Time
}

// HasChanges reports whether at least one business field is supplied.
func (u ContactUpdate) HasChanges() bool {
	return u.FirstName != "" || u.LastName != "" || u.Email != "" ||
		u.FavoriteColor != "" || u.Birthday != ""
}

// SetFields returns the $set document for this update.
func (u ContactUpdate) SetFields() bson.M {
	set := bson.M{"updatedAt": u.UpdatedAt}

	if u.FirstName != "" {
		set["firstName"] = u.FirstName
	}
	if u.LastName != "" {
		set["lastName"] = u.LastName
	}
	if u.Email != "" {
		set["email"] = u.Email
	}
	if u.FavoriteColor != "" {
		set["favoriteColor"] = u.FavoriteColor
	}
	if u.Birthday != "" {
		set["birthday"] = u.Birthday
	}

	return set
}

// Apply copies the supplied fields of u onto c.
func (u ContactUpdate) Apply(c *Contact) {
	if u.FirstName != "" {
		c.FirstName = u.FirstName
	}
	if u.LastName != "" {
		c.LastName = u.LastName
	}
	if u.Email != "" {
		c.Email = u.Email
	}
	if u.FavoriteColor != "" {
		c.FavoriteColor = u.FavoriteColor
	}
	if u.Birthday != "" {
		c.Birthday = u.Birthday
	}
	c.UpdatedAt = u.UpdatedAt
}
