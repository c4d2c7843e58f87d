package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/session"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	jwt.RegisteredClaims
	Username string     `json:"username"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

type Tokens struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewTokens(signingKey string, ttl time.Duration) *Tokens {
	return &Tokens{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Issue signs a token for user and returns it with the session it encodes.
func (t *Tokens) Issue(user model.User) (string, session.Session, error) {
	now := t.now()
	sess := session.New(user, uuid.NewString(), now.Add(t.ttl))

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		Username: user.Username,
		Name:     user.FullName,
		Role:     user.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.signingKey)
	if err != nil {
		return "", session.Session{}, fmt.Errorf("sign token: %w", err)
	}

	return token, sess, nil
}

func (t *Tokens) Parse(token string) (session.Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.signingKey, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return session.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return session.Session{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return session.Session{
		UserID:    model.ID(userID),
		Username:  c.Username,
		FullName:  c.Name,
		Role:      c.Role,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
