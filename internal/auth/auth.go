package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal is the authenticated identity asserted by the token issuer.
type Principal struct {
	ID   string
	Role Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

var ErrInvalidToken = errors.New("invalid token")

// Verifier checks HS256 bearer tokens issued by the identity service and
// extracts the principal they assert.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(token string) (Principal, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return Principal{}, ErrInvalidToken
	}

	role := RoleUser
	if r, _ := claims["role"].(string); r != "" {
		role = Role(r)
	}
	if role != RoleUser && role != RoleAdmin {
		return Principal{}, ErrInvalidToken
	}

	return Principal{ID: id, Role: role}, nil
}

// Issue signs a token asserting the given principal. Used by tests and
// local tooling; production tokens come from the identity service.
func (v *Verifier) Issue(p Principal, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   p.ID,
		"role": string(p.Role),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(v.secret)
}
