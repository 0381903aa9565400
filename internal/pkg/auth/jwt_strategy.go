package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/polkiloo/canteen/internal/domain/model"
)

const roleStaff = "staff"

type claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTStrategy signs identities as HS256 JSON Web Tokens.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates signed token for the identity.
func (s *JWTStrategy) IssueToken(identity model.Identity) (string, error) {
	if !identity.Authenticated() {
		return "", fmt.Errorf("issue token: %w", ErrInvalidToken)
	}
	issued := s.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}
	if identity.IsStaff() {
		c.Role = roleStaff
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// ParseToken validates token and returns encoded identity.
func (s *JWTStrategy) ParseToken(token string) (model.Identity, error) {
	var c claims
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	parsed, err := parser.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || parsed == nil || !parsed.Valid {
		return model.Identity{}, ErrInvalidToken
	}
	if c.ExpiresAt == nil || !c.ExpiresAt.Time.After(s.now()) {
		return model.Identity{}, ErrInvalidToken
	}

	if c.Role == roleStaff {
		return model.StaffIdentity(), nil
	}
	if c.Subject == "" {
		return model.Identity{}, ErrInvalidToken
	}
	return model.CustomerIdentity(c.Subject), nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}

// IsInvalidToken reports whether err means the credential was rejected.
func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
