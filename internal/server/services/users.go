package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/dbx"
	"github.com/dalesbridge/chronicle/internal/server/auth"
	"github.com/dalesbridge/chronicle/internal/server/config"
	"github.com/dalesbridge/chronicle/internal/server/models"
	"github.com/dalesbridge/chronicle/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// UserService is the auth provider for editor accounts: password sign-in,
// session verification, password changes, and admin user management.
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// SignInWithPassword verifies the credentials and mints a session token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) SignInWithPassword(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user, nil
}

// GetCurrentUser resolves a session token to its user. Invalid or expired
// tokens map to common.ErrUnauthorized.
func (s *UserService) GetCurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// UpdatePassword replaces the user's password hash.
func (s *UserService) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrInternal
	}

	return s.repomanager.Users(s.db).UpdatePasswordHash(ctx, userID, hash)
}

// InviteUserByEmail creates an editor account with a random initial
// password, returned exactly once so it can be passed on out of band.
// Admin-only; the caller enforces the gate.
func (s *UserService) InviteUserByEmail(ctx context.Context, email string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email %q", common.ErrValidation, email)
	}

	initialPassword, err := randomPassword()
	if err != nil {
		return nil, "", common.ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByEmail(ctx, email); err == nil {
			return common.ErrAlreadyExists
		} else if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		created, err = repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
		return err
	})
	if err != nil {
		return nil, "", err
	}

	return created, initialPassword, nil
}

// ListUsers returns all editor accounts. Admin-only at the call site.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// DeleteUser removes an editor account. Admin-only at the call site.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.repomanager.Users(s.db).Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomPassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
