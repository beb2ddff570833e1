// Package application implements the operation layer: each exported
// method maps one GraphQL operation to validation, the auth gate, the
// asset resolver, and the stores, and produces a response envelope.
// Expected business failures come back inside the envelope; returned
// errors are reserved for unexpected faults.
package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"employee-graphql-api/internal/domain/entity"
	"employee-graphql-api/internal/domain/repository"
	"employee-graphql-api/pkg/helpers"
	"employee-graphql-api/pkg/response"
	"employee-graphql-api/pkg/validation"
)

// AuthService handles signup and login.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// Login verifies credentials by username or email. Unknown identifier
// and wrong password produce the same envelope so callers cannot probe
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (*response.AuthPayload, error) {
	if in.UsernameOrEmail == "" || in.Password == "" {
		return response.AuthFailure("username/email and password are required"), nil
	}

	u, err := s.Repo.GetByUsernameOrEmail(ctx, in.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.AuthFailure("Invalid credentials"), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("user lookup failed")
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		return response.AuthFailure("Invalid credentials"), nil
	}

	token, _, err := s.JWT.Generate(u.ID, u.Username, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return response.AuthSuccess("Login successful", token, userView(u)), nil
}

// Signup validates the payload, rejects duplicate usernames/emails and
// creates the account with a bcrypt-hashed password. Email is stored
// lowercased so uniqueness is case-insensitive.
func (s *AuthService) Signup(ctx context.Context, in validation.SignupInput) (*response.AuthPayload, error) {
	if res := validation.Signup(in); !res.OK {
		return response.AuthFailure(res.Message), nil
	}

	exists, err := s.Repo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("duplicate pre-check failed")
		}
		return nil, err
	}
	if exists {
		return response.AuthFailure("User already exists"), nil
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hash failed")
		}
		return nil, err
	}

	u := &entity.User{
		Username:     in.Username,
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// Two concurrent signups can both pass the pre-check; the
		// unique constraint is the arbiter.
		if errors.Is(err, repository.ErrDuplicate) {
			return response.AuthFailure("User already exists"), nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", u.Username).Error("create user failed")
		}
		return nil, err
	}

	token, _, err := s.JWT.Generate(u.ID, u.Username, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return response.AuthSuccess("Signup successful", token, userView(u)), nil
}
