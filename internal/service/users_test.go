package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/inkwell-api/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.users.Register(ctx, models.RegisterUserInput{Email: "Bob@Example.com", Name: "Bob", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", resp.User.Email)
	assert.Equal(t, "token-"+resp.User.ID.String(), resp.Token)
	assert.NotEqual(t, "correct-horse", resp.User.PasswordHash)

	login, err := f.users.Login(ctx, models.LoginInput{Email: "BOB@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = f.users.Login(ctx, models.LoginInput{Email: "bob@example.com", Password: "wrong-password"})
	e := requireKind(t, err, KindUnauthorized)
	assert.Equal(t, msgBadCredentials, e.Message)

	_, err = f.users.Login(ctx, models.LoginInput{Email: "nobody@example.com", Password: "correct-horse"})
	requireKind(t, err, KindUnauthorized)

	me, err := f.users.Get(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", me.Name)

	_, err = f.users.Get(ctx, uuid.New())
	requireKind(t, err, KindNotFound)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, models.RegisterUserInput{Email: "a@b.c", Name: "A", Password: "short"})
	e := requireKind(t, err, KindValidation)
	assert.Equal(t, "password", e.Field)

	_, err = f.users.Register(ctx, models.RegisterUserInput{Email: "a@b.c", Name: "A", Password: "long-enough"})
	require.NoError(t, err)

	_, err = f.users.Register(ctx, models.RegisterUserInput{Email: "A@B.C", Name: "Other", Password: "long-enough"})
	e = requireKind(t, err, KindConflict)
	assert.Equal(t, "email", e.Field)
}
