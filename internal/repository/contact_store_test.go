package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/go-contacts/internal/model"
	"github.com/deppfellow/go-contacts/internal/storeerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testContactStore runs the behavior every ContactStore must share.
// The store must start empty.
func testContactStore(t *testing.T, store ContactStore) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	newContact := func(first string) *model.Contact {
		return &model.Contact{
			FirstName:     first,
			LastName:      "Doe",
			Email:         first + "@x.com",
			FavoriteColor: "blue",
			Birthday:      "1990-01-01",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	t.Run("empty list is not nil", func(t *testing.T) {
		contacts, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
	})

	john := newContact("john")
	jane := newContact("jane")

	t.Run("create assigns ids", func(t *testing.T) {
		id, err := store.Create(ctx, john)
		require.NoError(t, err)
		assert.False(t, id.IsZero())
		assert.Equal(t, id, john.ID)

		_, err = store.Create(ctx, jane)
		require.NoError(t, err)
		assert.NotEqual(t, john.ID, jane.ID)
	})

	t.Run("get round trip", func(t *testing.T) {
		got, err := store.Get(ctx, john.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, john.FirstName, got.FirstName)
		assert.Equal(t, john.Email, got.Email)
		assert.True(t, now.Equal(got.CreatedAt))
		assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	})

	t.Run("list in insertion order", func(t *testing.T) {
		contacts, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, john.ID, contacts[0].ID)
		assert.Equal(t, jane.ID, contacts[1].ID)
	})

	t.Run("update changes only supplied fields", func(t *testing.T) {
		later := now.Add(time.Second)
		require.NoError(t, store.Update(ctx, john.ID.Hex(), model.ContactUpdate{
			FavoriteColor: "green",
			UpdatedAt:     later,
		}))

		got, err := store.Get(ctx, john.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "green", got.FavoriteColor)
		assert.Equal(t, john.FirstName, got.FirstName)
		assert.Equal(t, john.Birthday, got.Birthday)
		assert.True(t, now.Equal(got.CreatedAt))
		assert.True(t, later.Equal(got.UpdatedAt))
	})

	t.Run("invalid ids", func(t *testing.T) {
		for _, id := range []string{"not-a-valid-id", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
			_, err := store.Get(ctx, id)
			assert.Equal(t, storeerr.InvalidID, storeerr.ErrCode(err), id)

			err = store.Update(ctx, id, model.ContactUpdate{FirstName: "x"})
			assert.Equal(t, storeerr.InvalidID, storeerr.ErrCode(err), id)

			err = store.Delete(ctx, id)
			assert.Equal(t, storeerr.InvalidID, storeerr.ErrCode(err), id)
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		unknown := primitive.NewObjectID().Hex()

		_, err := store.Get(ctx, unknown)
		assert.Equal(t, storeerr.NoDocuments, storeerr.ErrCode(err))

		err = store.Update(ctx, unknown, model.ContactUpdate{FirstName: "x", UpdatedAt: now})
		assert.Equal(t, storeerr.NoDocuments, storeerr.ErrCode(err))

		err = store.Delete(ctx, unknown)
		assert.Equal(t, storeerr.NoDocuments, storeerr.ErrCode(err))
	})

	t.Run("delete then delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, john.ID.Hex()))

		err := store.Delete(ctx, john.ID.Hex())
		assert.Equal(t, storeerr.NoDocuments, storeerr.ErrCode(err))

		_, err = store.Get(ctx, john.ID.Hex())
		assert.Equal(t, storeerr.NoDocuments, storeerr.ErrCode(err))

		// The remaining contact is still reachable.
		got, err := store.Get(ctx, jane.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "jane", got.FirstName)
	})
}

func TestContactInmem(t *testing.T) {
	testContactStore(t, NewContactInmem())
}

func TestContactInmem_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewContactInmem()

	contact := &model.Contact{FirstName: "John"}
	_, err := store.Create(ctx, contact)
	require.NoError(t, err)

	contact.FirstName = "mutated"
	got, err := store.Get(ctx, contact.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)

	got.FirstName = "mutated again"
	again, err := store.Get(ctx, contact.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "John", again.FirstName)
}

func TestContactRepository_Uninitialized(t *testing.T) {
	repo := NewContactRepository(newUninitializedDatabase(t))

	_, err := repo.List(context.Background())
	assert.Equal(t, storeerr.Uninitialized, storeerr.ErrCode(err))

	// Malformed ids are rejected before the connection is needed.
	_, err = repo.Get(context.Background(), "nope")
	assert.Equal(t, storeerr.InvalidID, storeerr.ErrCode(err))
}
