package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/apperr"
	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const invalidCredentialsMessage = "invalid credentials"

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=accounts_test

type usersRepo interface {
	Create(ctx context.Context, user User) (_ *User, err error)
	GetByEmail(ctx context.Context, email string) (_ *User, err error)
	GetByID(ctx context.Context, id string) (_ *User, err error)
}

type sessionStore interface {
	Login(ctx context.Context, identity auth.Identity, createdAt time.Time) (_ string, err error)
	Logout(ctx context.Context, token string) (err error)
}

type Service struct {
	repo     usersRepo
	sessions sessionStore
	nowFunc  func() time.Time
}

func NewService(repo usersRepo, sessions sessionStore) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		nowFunc:  time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	// reject display-name forms like "Ana <ana@example.com>"
	return err == nil && addr.Address == email
}

func (s *Service) CreateAccount(ctx context.Context, req CreateAccountRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.accounts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	v := &apperr.Validator{}
	v.Check(req.Name != "", "name", "required", "name is required")
	v.Check(validEmail(req.Email), "email", "invalid_format", "email is invalid")
	v.Check(req.Password != "", "password", "required", "password is required")
	v.Check(len(req.Password) <= pkg.MaxPasswordBytes, "password", "too_long", fmt.Sprintf("password must be at most %d bytes", pkg.MaxPasswordBytes))
	if err := v.Err(); err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         auth.RoleUser,
		CreatedAt:    s.nowFunc(),
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperr.Wrap(apperr.KindConflict, "email already in use", err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Debugf("new account created: %s", user.ID)
	return user, nil
}

// Authenticate answers the same error for an unknown email and a wrong password.
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (_ *LoginResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.accounts.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email := normalizeEmail(req.Email)
	v := &apperr.Validator{}
	v.Check(validEmail(email), "email", "invalid_format", "email is invalid")
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[email] failed login attempt for: %s", email)
			return nil, apperr.NewUnauthorized(invalidCredentialsMessage)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", email)
		return nil, apperr.NewUnauthorized(invalidCredentialsMessage)
	}

	token, err := s.sessions.Login(ctx, auth.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, s.nowFunc())
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		User:        user.Response(),
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.accounts.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.sessions.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return apperr.NewUnauthorized("session not found")
		}
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Service) Me(ctx context.Context, userID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.accounts.me")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NewNotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
