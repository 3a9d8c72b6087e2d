package services

import (
	"context"
	"encoding/json"

	"github.com/joblane/joblane-backend/internal/models"
)

type AuthService struct {
	identity Identity
	store    Store
}

func NewAuthService(identity Identity, store Store) *AuthService {
	return &AuthService{
		identity: identity,
		store:    store,
	}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	return s.identity.SignUp(ctx, email, password)
}

func (s *AuthService) LogIn(ctx context.Context, email, password string) (*models.User, *models.Session, error) {
	return s.identity.SignIn(ctx, email, password)
}

// Profiles backs the debug users endpoint, capped so it never dumps the
// whole table.
func (s *AuthService) Profiles(ctx context.Context, limit int) ([]json.RawMessage, error) {
	return s.store.Select(ctx, "user_profiles", "*", nil, limit)
}
