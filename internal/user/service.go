package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/coffee-orders/internal/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("admin access only")
)

const minPasswordLen = 6

// TokenIssuer signs identity tokens. *auth.Tokens satisfies it.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	log    *slog.Logger
}

func NewService(repo Repository, tokens TokenIssuer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, tokens: tokens, log: log}
}

// Register creates a customer account and signs it in.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		Roles:        []auth.Role{auth.RoleCustomer},
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		PostalCode:   strings.TrimSpace(in.PostalCode),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "user registered", "user_id", u.ID)
	return s.signIn(u)
}

func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	u, err := s.authenticate(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.signIn(u)
}

// AdminLogin is Login restricted to accounts holding the ADMIN role.
func (s *Service) AdminLogin(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	u, err := s.authenticate(ctx, in)
	if err != nil {
		return nil, err
	}
	if !u.Identity().IsAdmin() {
		s.log.WarnContext(ctx, "admin login refused", "user_id", u.ID)
		return nil, ErrNotAdmin
	}
	return s.signIn(u)
}

func (s *Service) authenticate(ctx context.Context, in LoginRequest) (*User, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) signIn(u *User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(u.Identity())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResponse{User: u, Token: token}, nil
}

func (s *Service) Profile(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) (*User, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	return s.repo.UpdateProfile(ctx, id, p)
}
