package security

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

const testKID = "test-key-1"

func newJWKSServer(t *testing.T, pub *rsa.PublicKey) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": testKID,
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			}},
		})
	}))
}

func signIDToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKID
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestGoogleVerifier_ValidToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newJWKSServer(t, &key.PublicKey)
	defer srv.Close()

	verifier := NewGoogleVerifier("client-id", []string{"https://accounts.google.com"}, srv.URL)

	raw := signIDToken(t, key, jwt.MapClaims{
		"iss":   "https://accounts.google.com",
		"aud":   "client-id",
		"email": "user@gmail.com",
		"name":  "Google User",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "user@gmail.com", claims.Email)
	assert.Equal(t, "Google User", claims.Name)
}

func TestGoogleVerifier_RejectsBadTokens(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newJWKSServer(t, &key.PublicKey)
	defer srv.Close()

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := NewGoogleVerifier("client-id", []string{"https://accounts.google.com"}, srv.URL)

	valid := jwt.MapClaims{
		"iss":   "https://accounts.google.com",
		"aud":   "client-id",
		"email": "user@gmail.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "not-a-jwt"},
		{name: "wrong signing key", raw: signIDToken(t, otherKey, valid)},
		{name: "expired", raw: signIDToken(t, key, jwt.MapClaims{
			"iss": "https://accounts.google.com", "aud": "client-id",
			"email": "user@gmail.com", "exp": time.Now().Add(-time.Hour).Unix(),
		})},
		{name: "wrong audience", raw: signIDToken(t, key, jwt.MapClaims{
			"iss": "https://accounts.google.com", "aud": "someone-else",
			"email": "user@gmail.com", "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{name: "wrong issuer", raw: signIDToken(t, key, jwt.MapClaims{
			"iss": "https://evil.example.com", "aud": "client-id",
			"email": "user@gmail.com", "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{name: "missing email", raw: signIDToken(t, key, jwt.MapClaims{
			"iss": "https://accounts.google.com", "aud": "client-id",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestGoogleVerifier_JWKSUnreachable(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := NewGoogleVerifier("client-id", nil, "http://127.0.0.1:1/certs")

	raw := signIDToken(t, key, jwt.MapClaims{
		"iss":   "https://accounts.google.com",
		"aud":   "client-id",
		"email": "user@gmail.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	// Network failure maps to a verification error, not a panic or hang.
	_, err = verifier.Verify(context.Background(), raw)
	assert.Error(t, err)
}
