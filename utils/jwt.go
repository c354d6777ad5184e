package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Adisheth/car-rental-website/models"
)

// Token lifetimes. Remember-me logins get the extended expiry.
const (
	TokenTTL         = 24 * time.Hour
	TokenTTLRemember = 30 * 24 * time.Hour
)

// ErrInvalidToken is returned for every verification failure. Callers
// are never told whether the signature, the payload or the expiry was at
// fault.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the self-contained session payload carried in the cookie.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// CreateToken signs a session token for user. There is no server-side
// revocation: the token stays valid for its full lifetime even after
// logout clears the cookie.
func CreateToken(secret string, user *models.User, remember bool) (string, error) {
	ttl := TokenTTL
	if remember {
		ttl = TokenTTLRemember
	}

	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies the signature and expiry of a session token.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
