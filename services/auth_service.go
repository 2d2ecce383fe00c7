package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"ticket-storefront/internal/status"
	"ticket-storefront/models"
	"ticket-storefront/store"
	"ticket-storefront/utils"
)

// AuthService is the session wrapper around the store's user lookups.
// Sessions are transient state, not entity state, so they live in Redis
// with a TTL; the store itself stays free of external I/O.
type AuthService struct {
	Redis      *redis.Client
	store      *store.Store
	sessionTTL time.Duration

	// newToken is swappable in tests.
	newToken func() (string, error)
}

func NewAuthService(redisClient *redis.Client, st *store.Store, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		Redis:      redisClient,
		store:      st,
		sessionTTL: sessionTTL,
		newToken:   func() (string, error) { return utils.GenerateCode(16) },
	}
}

// Login verifies credentials and opens a session. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user := s.store.GetUserByEmail(email)
	if user == nil {
		return "", nil, status.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, status.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusBlocked {
		return "", nil, status.ErrAccountBlocked
	}

	token, err := s.newToken()
	if err != nil {
		return "", nil, fmt.Errorf("generating session token: %w", err)
	}

	sessionKey := fmt.Sprintf("session:%s", token)
	if err := s.Redis.HSet(ctx, sessionKey, "user_id", user.ID.String(), "role", user.Role).Err(); err != nil {
		return "", nil, fmt.Errorf("storing session: %w", err)
	}
	s.Redis.Expire(ctx, sessionKey, s.sessionTTL)

	return token, user, nil
}

// Register creates a customer account. Duplicate emails are rejected
// before the store is touched.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if existing := s.store.GetUserByEmail(email); existing != nil {
		return nil, status.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		Status:       models.UserStatusActive,
	}
	return s.store.CreateUser(user), nil
}

// CurrentUser resolves a session token back to its user. An unknown or
// expired token, or a session pointing at a vanished user (reset), yields
// ErrSessionExpired.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	sessionKey := fmt.Sprintf("session:%s", token)
	userID, err := s.Redis.HGet(ctx, sessionKey, "user_id").Result()
	if err != nil {
		return nil, status.ErrSessionExpired
	}

	user := s.store.GetUserByID(models.UserID(userID))
	if user == nil {
		return nil, status.ErrSessionExpired
	}
	if user.Status == models.UserStatusBlocked {
		return nil, status.ErrAccountBlocked
	}
	return user, nil
}

// Logout drops the session; unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) {
	s.Redis.Del(ctx, fmt.Sprintf("session:%s", token))
}
