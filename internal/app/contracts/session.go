package contracts

import (
	"context"

	"clinic-portal/internal/app/models"
)

// SessionStore keeps the token and user of a browser session together.
// Load never fails: anything other than a complete session reads as nil.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) *models.Session
	Save(ctx context.Context, sessionID, token string, user models.User) error
	Clear(ctx context.Context, sessionID string) error
}
