package services

import (
	"context"
	"testing"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, models.RegisterInput{Email: "Ann@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ann@example.com", res.Email)
	assert.Equal(t, models.RoleUser, res.Role)

	user, err := f.store.Users().FindByID(ctx, res.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	login, err := f.auth.Login(ctx, models.LoginInput{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, res.UserID, login.UserID)

	me, err := f.auth.ResolveUser(ctx, res.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.UserView{ID: res.UserID, Email: "ann@example.com", Role: models.RoleUser}, *me)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, models.RegisterInput{Email: "dup@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, models.RegisterInput{Email: "dup@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, models.RegisterInput{Email: "real@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := f.auth.Login(ctx, models.LoginInput{Email: "real@example.com", Password: "nope"})
	_, unknownEmail := f.auth.Login(ctx, models.LoginInput{Email: "ghost@example.com", Password: "secret1"})

	require.ErrorIs(t, wrongPassword, ErrUnauthorized)
	require.ErrorIs(t, unknownEmail, ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestResolveUser_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.ResolveUser(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}
