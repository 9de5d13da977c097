package user

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizee-lambda/internal/apperr"
	"github.com/saulo-duarte/quizee-lambda/internal/auth"
	"github.com/saulo-duarte/quizee-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

var (
	errInvalidCredentials = apperr.Authentication("Invalid email or password")
	errUserNotFound       = apperr.NotFound("User not found")
)

type Service interface {
	Signup(ctx context.Context, dto SignupDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*User, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates the account and its zeroed leaderboard row together.
func (s *service) Signup(ctx context.Context, dto SignupDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	dto.Email = normalizeEmail(dto.Email)
	dto.Name = strings.TrimSpace(dto.Name)
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.Validation("email, password (min 8 characters) and name are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), passwordCost)
	if err != nil {
		return nil, apperr.Internal("Failed to create account", err)
	}

	u := &User{
		ID:           uuid.New(),
		Email:        dto.Email,
		PasswordHash: string(hash),
		Name:         dto.Name,
		Age:          dto.Age,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.FindByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
		if err := tx.Create(ctx, u); err != nil {
			return err
		}
		return tx.InitLeaderboard(ctx, u.ID)
	})
	if errors.Is(err, ErrEmailTaken) {
		return nil, apperr.Conflict("User already exists")
	}
	if err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, apperr.Internal("Failed to create account", err)
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return s.issue(u)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	dto.Email = normalizeEmail(dto.Email)
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.Validation("email and password are required")
	}

	u, err := s.repo.FindByEmail(ctx, dto.Email)
	if err != nil {
		return nil, apperr.Internal("Failed to log in", err)
	}
	if u == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	return s.issue(u)
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if u == nil {
		return nil, errUserNotFound
	}
	return u, nil
}

func (s *service) issue(u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), u.Email, auth.TokenTTL)
	if err != nil {
		return nil, apperr.Internal("Failed to issue token", err)
	}
	return &AuthResponse{Token: token, User: u}, nil
}
