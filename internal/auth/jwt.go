package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is fixed at issuance; there is no refresh mechanism.
const TokenTTL = 5 * time.Hour

var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is not valid")
)

// Identity is the user identity embedded in a token. Tokens are stateless:
// verification never touches the database.
type Identity struct {
	UserID uint
	Email  string
	Name   string
}

type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenManager signs and verifies session tokens with a symmetric secret
// held in process-wide configuration.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}
}

func (m *TokenManager) Issue(userID uint, email, name string) (string, error) {
	return m.issueAt(time.Now(), userID, email, name)
}

func (m *TokenManager) issueAt(now time.Time, userID uint, email, name string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
		Email:  email,
		Name:   name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify returns the embedded identity, ErrTokenExpired for a token past its
// expiry, or ErrTokenInvalid for anything with a bad signature or format.
func (m *TokenManager) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{UserID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
