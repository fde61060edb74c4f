package services

import (
	"context"
	"testing"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.auth.CreateUser(ctx, &CreateUserInput{
		Username: "teller1", Password: "s3cret-pass", Role: models.RoleTeller,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeller, user.Role)

	resp, err := f.auth.Login(ctx, &LoginInput{Username: "teller1", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := jwt.ValidateToken(resp.AccessToken, "test_secret")
	require.NoError(t, err)
	assert.Equal(t, "teller1", claims.Username)
	assert.Equal(t, string(models.RoleTeller), claims.Role)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.CreateUser(ctx, &CreateUserInput{
		Username: "teller1", Password: "s3cret-pass", Role: models.RoleTeller,
	})
	require.NoError(t, err)

	// Unknown user and wrong password fail identically; the error must not
	// reveal which usernames exist
	_, errUnknown := f.auth.Login(ctx, &LoginInput{Username: "ghost", Password: "whatever1"})
	_, errWrongPw := f.auth.Login(ctx, &LoginInput{Username: "teller1", Password: "wrong-pass"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.CreateUser(ctx, &CreateUserInput{Username: "", Password: "longenough", Role: models.RoleTeller})
	assert.True(t, domain.IsValidation(err))

	_, err = f.auth.CreateUser(ctx, &CreateUserInput{Username: "u", Password: "short", Role: models.RoleTeller})
	assert.True(t, domain.IsValidation(err))

	_, err = f.auth.CreateUser(ctx, &CreateUserInput{Username: "u", Password: "longenough", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.CreateUser(ctx, &CreateUserInput{Username: "teller1", Password: "s3cret-pass", Role: models.RoleTeller})
	require.NoError(t, err)

	_, err = f.auth.CreateUser(ctx, &CreateUserInput{Username: "teller1", Password: "other-pass", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.CreateUser(ctx, &CreateUserInput{Username: "teller1", Password: "old-password", Role: models.RoleTeller})
	require.NoError(t, err)

	// Wrong current password is rejected
	err = f.auth.ChangePassword(ctx, "teller1", "not-the-old", "new-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, f.auth.ChangePassword(ctx, "teller1", "old-password", "new-password"))

	_, err = f.auth.Login(ctx, &LoginInput{Username: "teller1", Password: "old-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &LoginInput{Username: "teller1", Password: "new-password"})
	assert.NoError(t, err)
}
