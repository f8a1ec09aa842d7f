package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionClaims is what a session token carries.
type SessionClaims struct {
	SessionID string
	Email     string
	Role      string
	DeviceID  string
}

// TokenIssuer signs and validates session tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if secret == "" {
		secret = "HANDYHUB"
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed JWT for the session. The token expires after the issuer's TTL.
func (i *TokenIssuer) GenerateToken(sc SessionClaims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    sc.SessionID,
		"email":  sc.Email,
		"role":   sc.Role,
		"device": sc.DeviceID,
		"iat":    now.Unix(),
		"exp":    now.Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (i *TokenIssuer) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
}

// ExtractClaims validates the token and returns its session claims.
func (i *TokenIssuer) ExtractClaims(tokenString string) (SessionClaims, error) {
	token, err := i.ValidateToken(tokenString)
	if err != nil {
		return SessionClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return SessionClaims{}, errors.New("token does not contain a valid 'sub' claim")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	device, _ := claims["device"].(string)

	return SessionClaims{SessionID: sub, Email: email, Role: role, DeviceID: device}, nil
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
