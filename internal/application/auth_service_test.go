package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-graphql-api/internal/domain/entity"
	"employee-graphql-api/internal/domain/repository"
	"employee-graphql-api/pkg/helpers"
	"employee-graphql-api/pkg/validation"
)

type fakeUserRepo struct {
	users []*entity.User
	err   error // when set, every call fails with it
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = fmt.Sprintf("u-%d", len(f.users)+1)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == identifier || u.Email == strings.ToLower(identifier) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.users {
		if u.Username == username || u.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func newAuthService(repo repository.UserRepository) *AuthService {
	jwt := helpers.NewJWTManager("test-secret", 2*time.Hour)
	return NewAuthService(repo, jwt, helpers.NewLogger("test", "test"))
}

func TestSignupThenLogin(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})
	ctx := context.Background()

	out, err := svc.Signup(ctx, validation.SignupInput{
		Username: "alice", Email: "Alice@Example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.True(t, out.Success)
	require.NotNil(t, out.Token)
	require.NotNil(t, out.User)
	assert.Equal(t, "alice@example.com", out.User.Email, "email is stored lowercased")

	// The minted token decodes to the same identity claims.
	id, ok := svc.JWT.Verify(*out.Token)
	require.True(t, ok)
	assert.Equal(t, out.User.ID, id.ID)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "alice@example.com", id.Email)

	for _, identifier := range []string{"alice", "alice@example.com", "ALICE@example.com"} {
		res, err := svc.Login(ctx, validation.LoginInput{UsernameOrEmail: identifier, Password: "secret1"})
		require.NoError(t, err)
		assert.True(t, res.Success, "login with %q", identifier)
		assert.NotNil(t, res.Token)
	}
}

func TestSignupValidationFailureSkipsStore(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("store must not be touched")}
	svc := newAuthService(repo)

	out, err := svc.Signup(context.Background(), validation.SignupInput{
		Username: "alice", Email: "bad-email", Password: "secret1",
	})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "Invalid email format", out.Message)
	assert.Nil(t, out.Token)
	assert.Nil(t, out.User)
}

func TestSignupDuplicates(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})
	ctx := context.Background()

	out, err := svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "A@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, out.Success)

	t.Run("duplicate username", func(t *testing.T) {
		out, err := svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "other@x.com", Password: "whatever"})
		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, "User already exists", out.Message)
	})

	t.Run("duplicate email case-folded", func(t *testing.T) {
		out, err := svc.Signup(ctx, validation.SignupInput{Username: "alice2", Email: "a@x.com", Password: "whatever"})
		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, "User already exists", out.Message)
		assert.Nil(t, out.Token)
		assert.Nil(t, out.User)
	})
}

func TestSignupDuplicateRaceMapsConstraintError(t *testing.T) {
	// The pre-check passes but the store rejects the insert, as happens
	// when two signups race; the constraint error must map to the same
	// business message.
	repo := &fakeUserRepo{}
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Bypass the pre-check by hitting Create directly with a duplicate.
	dup := &entity.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicate)
}

func TestLoginUniformFailureMessage(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	unknown, err := svc.Login(ctx, validation.LoginInput{UsernameOrEmail: "nobody", Password: "secret1"})
	require.NoError(t, err)
	wrongPwd, err := svc.Login(ctx, validation.LoginInput{UsernameOrEmail: "alice", Password: "wrong"})
	require.NoError(t, err)

	// Unknown identifier and wrong password are indistinguishable.
	assert.Equal(t, unknown, wrongPwd)
	assert.False(t, unknown.Success)
	assert.Equal(t, "Invalid credentials", unknown.Message)
	assert.Nil(t, unknown.Token)
	assert.Nil(t, unknown.User)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{err: errors.New("store must not be touched")})

	for _, in := range []validation.LoginInput{
		{},
		{UsernameOrEmail: "alice"},
		{Password: "secret1"},
	} {
		out, err := svc.Login(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, "username/email and password are required", out.Message)
	}
}

func TestAuthUnexpectedFaultPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newAuthService(&fakeUserRepo{err: boom})
	ctx := context.Background()

	_, err := svc.Login(ctx, validation.LoginInput{UsernameOrEmail: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, boom)
}

func TestAuthUnexpectedFaultIsLogged(t *testing.T) {
	boom := errors.New("connection refused")
	logger, hook := logrustest.NewNullLogger()
	jwt := helpers.NewJWTManager("test-secret", 2*time.Hour)
	svc := NewAuthService(&fakeUserRepo{err: boom}, jwt, logger)
	ctx := context.Background()

	_, err := svc.Login(ctx, validation.LoginInput{UsernameOrEmail: "alice", Password: "secret1"})
	require.ErrorIs(t, err, boom)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "user lookup failed", entry.Message)
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), boom)

	hook.Reset()
	_, err = svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.ErrorIs(t, err, boom)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "duplicate pre-check failed", entry.Message)
}

func TestAuthExpectedFailuresAreNotLogged(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	jwt := helpers.NewJWTManager("test-secret", 2*time.Hour)
	svc := NewAuthService(&fakeUserRepo{}, jwt, logger)
	ctx := context.Background()

	out, err := svc.Login(ctx, validation.LoginInput{UsernameOrEmail: "nobody", Password: "whatever"})
	require.NoError(t, err)
	assert.False(t, out.Success)

	out, err = svc.Signup(ctx, validation.SignupInput{Username: "alice", Email: "bad", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, out.Success)

	assert.Nil(t, hook.LastEntry())
}
