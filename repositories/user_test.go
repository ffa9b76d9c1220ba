package repositories

import (
	"candidate-notes/errors"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := openTestStore(t)

	// Given a registered user
	created, err := store.Users.CreateUser(ctx, "dana", " Dana@Example.com ", "hash")
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.Equal("dana@example.com", created.Email)

	// When fetching by id and by email
	byID, err := store.Users.GetUserByID(ctx, created.ID)
	req.NoError(err)
	byEmail, err := store.Users.GetUserByEmail(ctx, "DANA@example.com")
	req.NoError(err)

	// Then both lookups resolve to the same user
	req.Equal(created.ID, byID.ID)
	req.Equal("hash", byID.PasswordHash)
	req.Equal(created.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.Users.CreateUser(ctx, "dana", "dana@example.com", "hash")
	req.NoError(err)

	_, err = store.Users.CreateUser(ctx, "other", "dana@example.com", "hash")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestUserRepository_FindUserByName(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := openTestStore(t)

	first, err := store.Users.CreateUser(ctx, "sam", "sam1@example.com", "hash")
	req.NoError(err)
	time.Sleep(time.Millisecond)
	_, err = store.Users.CreateUser(ctx, "sam", "sam2@example.com", "hash")
	req.NoError(err)
	_, err = store.Users.CreateUser(ctx, "samantha", "samantha@example.com", "hash")
	req.NoError(err)

	// When two users share a display name, the oldest wins
	found, err := store.Users.FindUserByName(ctx, "sam")
	req.NoError(err)
	req.Equal(first.ID, found.ID)

	// And a prefix of a name never matches
	_, err = store.Users.FindUserByName(ctx, "sa")
	req.ErrorIs(err, errors.ErrUserNotFound)

	// And lookups are exact
	_, err = store.Users.FindUserByName(ctx, "Sam")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_ListUsers_SortedByName(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := openTestStore(t)

	for _, name := range []string{"zoe", "adam", "mia"} {
		_, err := store.Users.CreateUser(ctx, name, name+"@example.com", "hash")
		req.NoError(err)
	}

	users, err := store.Users.ListUsers(ctx)
	req.NoError(err)
	req.Len(users, 3)
	req.Equal("adam", users[0].Name)
	req.Equal("mia", users[1].Name)
	req.Equal("zoe", users[2].Name)
}

func TestUserRepository_UnknownUser(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	_, err := store.Users.GetUserByID(context.Background(), "missing")
	req.ErrorIs(err, errors.ErrUserNotFound)
	_, err = store.Users.GetUserByEmail(context.Background(), "missing@example.com")
	req.ErrorIs(err, errors.ErrUserNotFound)
}
