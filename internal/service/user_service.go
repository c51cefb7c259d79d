package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/service/auth"
	"github.com/arundaon/blog-api/internal/store"
)

// UserService provides account operations: registration and login.
type UserService interface {
	// Register creates a new user account. No token is issued on
	// registration.
	// Returns store.ErrEmailExists if the email is already registered and
	// domain validation errors for out-of-range fields.
	Register(ctx context.Context, name, email, password string) error

	// Login verifies the credentials and issues a signed token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong
	// password, with no distinction between the two.
	Login(ctx context.Context, email, password string) (string, error)
}

// userServiceImpl implements UserService.
type userServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	tokens    auth.TokenService
	txRunner  store.TxRunner
	logger    *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.TokenService,
	txRunner store.TxRunner,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		tokens:    tokens,
		txRunner:  txRunner,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register. The uniqueness check and the
// insert run in one transaction; the unique index on email remains the
// final arbiter under concurrent registrations.
func (s *userServiceImpl) Register(ctx context.Context, name, email, password string) error {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("registration rejected by validation",
			"error", err, "email", email)
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		exists, err := txStore.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrEmailExists
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register existing email", "email", email)
		} else {
			s.logger.Error("failed to register user", "error", err, "email", email)
		}
		return err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return nil
}

// Login implements UserService.Login.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email", "email", email)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user by email", "error", err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
