package services

import (
	"errors"
	"testing"

	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/helper"
	"github.com/policyvault/policy-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (UserService, *repository.InMemoryUserRepository) {
	repo := repository.NewInMemoryUserRepository()
	return NewUserService(repo, nil, helper.SetupAuth("test-secret")), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newUserService()

	user, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw12345678"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	stored, err := repo.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw12345678", stored.PasswordHash)
	assert.True(t, helper.ComparePassword(stored.PasswordHash, "pw12345678"))
}

func TestRegisterDuplicateEmailDoesNotMutate(t *testing.T) {
	svc, repo := newUserService()

	first, err := svc.Register(dto.RegisterRequest{Name: "First", Email: "dup@x.com", Password: "pw12345678"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Name: "Second", Email: "dup@x.com", Password: "other-pass"})
	require.True(t, errors.Is(err, repository.ErrDuplicateEmail))

	stored, err := repo.FindUserByEmail("dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "First", stored.Name)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Register(dto.RegisterRequest{Email: "  MiXeD@X.com ", Password: "pw12345678"})
	require.NoError(t, err)
	assert.Equal(t, "mixed@x.com", user.Email)
	assert.Equal(t, "mixed", user.Name)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(dto.RegisterRequest{Email: "", Password: "pw12345678"})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.Register(dto.RegisterRequest{Email: "a@x.com", Password: ""})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	svc, _ := newUserService()
	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw12345678"})
	require.NoError(t, err)

	user, token, err := svc.Login("a@x.com", "pw12345678")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	require.NotEmpty(t, token)

	claims, err := helper.SetupAuth("test-secret").VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginUsesOneErrorForAllFailures(t *testing.T) {
	svc, _ := newUserService()
	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw12345678"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login("ghost@x.com", "pw12345678")
	_, _, wrongErr := svc.Login("a@x.com", "wrong-password")

	assert.True(t, errors.Is(unknownErr, ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, ErrInvalidCredentials))
}

func TestForgotPasswordNeverFails(t *testing.T) {
	svc, _ := newUserService()
	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw12345678"})
	require.NoError(t, err)

	assert.NoError(t, svc.ForgotPassword("a@x.com"))
	assert.NoError(t, svc.ForgotPassword("ghost@x.com"))
}

func TestGetProfile(t *testing.T) {
	svc, _ := newUserService()
	created, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw12345678"})
	require.NoError(t, err)

	user, err := svc.GetProfile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)

	_, err = svc.GetProfile("missing-id")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
