// Package session carries the authenticated caller through a request and
// decides what that caller may do.
package session

import (
	"context"
	"time"

	"github.com/protomem/licensing/internal/ctxstore"
	"github.com/protomem/licensing/internal/model"
)

var _sessionKey = ctxstore.NewKey[Session]("session")

type Session struct {
	UserID    model.ID   `json:"userId"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName"`
	Role      model.Role `json:"role"`
	TokenID   string     `json:"-"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

func New(user model.User, tokenID string, expiresAt time.Time) Session {
	return Session{
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
}

func (s Session) Can(c Capability) bool {
	return Can(s.Role, c)
}

func (s Session) Capabilities() []Capability {
	return CapabilitiesOf(s.Role)
}

func With(ctx context.Context, s Session) context.Context {
	return _sessionKey.With(ctx, s)
}

func From(ctx context.Context) (Session, bool) {
	return _sessionKey.From(ctx)
}
