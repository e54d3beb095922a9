package helpers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and validates access tokens. Issued tokens are always
// HS256 signed with the shared secret. When a JWKS endpoint is configured,
// tokens carrying a kid are checked against the keys published there and
// tokens without one still go through the shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	jwks   *keyfunc.JWKS
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// NewJWKSTokenManager validates against the keys served at jwksURL. The key
// set is refreshed in the background until Close is called.
func NewJWKSTokenManager(ctx context.Context, jwksURL, secret string, ttl time.Duration) (*TokenManager, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS from %s: %v", jwksURL, err)
	}
	tm := NewTokenManager(secret, ttl)
	tm.jwks = jwks
	return tm, nil
}

// TTL is the lifetime given to issued tokens.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

func (tm *TokenManager) Close() {
	if tm.jwks != nil {
		tm.jwks.EndBackground()
	}
}

func (tm *TokenManager) IssueToken(userID, role string) (string, error) {
	if len(tm.secret) == 0 {
		return "", errors.New("token secret is not configured")
	}
	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

func (tm *TokenManager) ValidateToken(tokenStr string) (*CustomClaims, error) {
	if tokenStr == "" {
		return nil, errors.New("token is empty")
	}

	var (
		keyFunc jwt.Keyfunc
		opts    []jwt.ParserOption
	)
	if tm.jwks != nil {
		keyFunc = tm.jwksKeyfunc
	} else {
		keyFunc = func(*jwt.Token) (interface{}, error) { return tm.secret, nil }
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token carries no subject")
	}
	return claims, nil
}

func (tm *TokenManager) jwksKeyfunc(token *jwt.Token) (interface{}, error) {
	if _, hasKID := token.Header["kid"]; hasKID {
		return tm.jwks.Keyfunc(token)
	}
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token without kid must be %s signed", jwt.SigningMethodHS256.Alg())
	}
	if len(tm.secret) == 0 {
		return nil, errors.New("token secret is not configured")
	}
	return tm.secret, nil
}

// BearerToken extracts the token from an Authorization header value, with or
// without the "Bearer " prefix.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	return hasLower && hasUpper && hasNumber
}

// StringTrim normalizes an id coming from a path or JSON template: it trims
// spaces and surrounding quotes.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}
