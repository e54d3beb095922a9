package helpers

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKID = "kost-test-key"

// newJWKSManager serves the public half of a fresh RSA key as a JWKS and
// returns a TokenManager trusting it plus the private key.
func newJWKSManager(t *testing.T) (*TokenManager, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	set := map[string]interface{}{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": testKID,
			"alg": jwt.SigningMethodRS256.Alg(),
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}))
	t.Cleanup(srv.Close)

	tm, err := NewJWKSTokenManager(context.Background(), srv.URL, secret, time.Hour)
	require.NoError(t, err)
	t.Cleanup(tm.Close)
	return tm, key
}

func rs256Token(t *testing.T, key *rsa.PrivateKey, kid string) string {
	t.Helper()
	claims := CustomClaims{
		UserID: "65e1c0ffee0000000000beef",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestJWKSTokenManager_AcceptsOwnIssuedTokens(t *testing.T) {
	tm, _ := newJWKSManager(t)

	token, err := tm.IssueToken("507f1f77bcf86cd799439011", "renter")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "renter", claims.Role)
}

func TestJWKSTokenManager_AcceptsPublishedKey(t *testing.T) {
	tm, key := newJWKSManager(t)

	claims, err := tm.ValidateToken(rs256Token(t, key, testKID))
	require.NoError(t, err)
	assert.Equal(t, "65e1c0ffee0000000000beef", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWKSTokenManager_Rejects(t *testing.T) {
	tm, key := newJWKSManager(t)

	foreign, err := NewTokenManager("another-secret-another-secret-xx", time.Hour).IssueToken("u1", "admin")
	require.NoError(t, err)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cases := map[string]string{
		"hs256 with another secret":  foreign,
		"rs256 without kid":          rs256Token(t, key, ""),
		"rs256 with unpublished key": rs256Token(t, other, testKID),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tm.ValidateToken(token)
			assert.Error(t, err)
		})
	}
}
