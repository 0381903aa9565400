package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
	pkgAuth "github.com/polkiloo/canteen/internal/pkg/auth"
)

// RegisterInput carries customer registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	staff  pkgAuth.StaffCredentials
	now    func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	staff pkgAuth.StaffCredentials,
) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, staff: staff, now: utcNow}
}

// Register creates a customer account and returns an auth token for it.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if blank(in.Name, in.Email, in.Phone) || in.Password == "" {
		return nil, "", domainErrors.Validation("Missing required fields")
	}
	if !ValidateEmail(in.Email) {
		return nil, "", domainErrors.Validation("Invalid email format")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, "", domainErrors.Validation("Password is too long")
		}
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    u.now(),
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(model.CustomerIdentity(usr.ID))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates customer credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.Validation("Missing email or password")
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(model.CustomerIdentity(usr.ID))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// StaffLogin checks the configured staff pair and issues a staff token.
func (u *AuthUseCase) StaffLogin(_ context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domainErrors.Validation("Missing username or password")
	}
	if !u.staff.Match(username, password) {
		return "", domainErrors.ErrInvalidCredentials
	}
	return u.tokens.IssueToken(model.StaffIdentity())
}

// StaffUsername returns the configured staff login name.
func (u *AuthUseCase) StaffUsername() string {
	return u.staff.Username
}

// ParseToken decodes caller identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
