package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joblane/joblane-backend/internal/models"
)

// Identity is the slice of the auth provider the services actually use.
// Declared here so tests can substitute a fake without touching the real
// client.
type Identity interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, *models.Session, error)
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// Store is the table-scoped data API. Rows stay raw: the provider owns the
// schema and responses are passed through to the caller as-is.
type Store interface {
	Select(ctx context.Context, table, columns string, filters map[string]string, limit int) ([]json.RawMessage, error)
	Insert(ctx context.Context, table string, row any) ([]json.RawMessage, error)
	Delete(ctx context.Context, table string, filters map[string]string) ([]json.RawMessage, error)
}

// upstreamStatus pulls the provider's HTTP status out of an error chain,
// zero when the error carries none.
func upstreamStatus(err error) int {
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return 0
}

func isConflict(err error) bool {
	return upstreamStatus(err) == http.StatusConflict
}
