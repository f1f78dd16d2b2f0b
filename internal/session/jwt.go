// Package session verifies the signed session tokens issued by the product's auth layer.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

const tokenType = "session"

// Claims represents the session token claims. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements model.SessionOracle and model.SessionIssuer backed by symmetric HMAC.
type JWT struct {
	secretKey  string
	cookieName string
	now        func() time.Time
	logger     *logger.Logger
}

var (
	_ model.SessionOracle = (*JWT)(nil)
	_ model.SessionIssuer = (*JWT)(nil)
)

// NewJWT creates a session oracle that reads tokens from the Authorization header
// or from the cookie named cookieName.
func NewJWT(secretKey, cookieName string, logger *logger.Logger) *JWT {
	return &JWT{
		secretKey:  secretKey,
		cookieName: cookieName,
		now:        time.Now,
		logger:     logger,
	}
}

// Issue creates a session token for userID valid for ttl.
func (j *JWT) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// GetSession returns the session carried by headers, or nil when there is none or it is invalid.
func (j *JWT) GetSession(_ context.Context, headers http.Header) (*model.Session, error) {
	tokenString := j.extract(headers)
	if tokenString == "" {
		return nil, nil
	}

	claims, err := j.parse(tokenString)
	if err != nil {
		j.logger.Debug("Session: rejected token",
			"error", err.Error())
		return nil, nil
	}

	return &model.Session{
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *JWT) extract(headers http.Header) string {
	if auth := headers.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if j.cookieName == "" {
		return ""
	}
	req := http.Request{Header: headers}
	cookie, err := req.Cookie(j.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (j *JWT) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("session token is invalid")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("session token has no subject")
	}
	return claims, nil
}
