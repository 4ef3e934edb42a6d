// Package auth issues and verifies the signed bearer tokens that carry
// a user's identity between requests. Tokens are stateless: the server
// keeps no session records and trusts the signature plus expiry alone.
package auth

import (
	"errors"
	"fmt"
	"time"

	"inkwell/app/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload: user id, admin flag and the registered
// expiry/issued-at fields.
type Claims struct {
	UserID  int  `json:"uid"`
	IsAdmin bool `json:"adm"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies bearer tokens with an HMAC secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens creates a token service with the given signing secret and
// token lifetime.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for the user.
func (t *Tokens) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a raw token and returns its claims. Signature and
// expiry failures both come back as ErrInvalidToken.
func (t *Tokens) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
