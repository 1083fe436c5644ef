package security

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is what the login flow needs from an externally issued
// identity token.
type IdentityClaims struct {
	Email string
	Name  string
}

// IdentityVerifier validates an identity-provider token. Implementations do
// the signature and claims checks; callers treat any error as a failed login.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (IdentityClaims, error)
}

var ErrIdentityToken = errors.New("invalid identity token")

type googleIDClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// GoogleVerifier checks Google ID tokens against Google's published JWKS.
// Keys are cached; an unknown kid triggers a refetch.
type GoogleVerifier struct {
	audience string
	issuers  []string
	jwksURL  string
	client   *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func NewGoogleVerifier(audience string, issuers []string, jwksURL string) *GoogleVerifier {
	return &GoogleVerifier{
		audience: audience,
		issuers:  issuers,
		jwksURL:  jwksURL,
		client:   &http.Client{},
		keys:     make(map[string]*rsa.PublicKey),
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (IdentityClaims, error) {
	claims := &googleIDClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token has no kid header")
		}
		return v.keyForKID(ctx, kid)
	}, opts...)
	if err != nil {
		return IdentityClaims{}, fmt.Errorf("%w: %v", ErrIdentityToken, err)
	}
	if !token.Valid {
		return IdentityClaims{}, ErrIdentityToken
	}

	if len(v.issuers) > 0 && !v.issuerAllowed(claims.Issuer) {
		return IdentityClaims{}, fmt.Errorf("%w: issuer %q not accepted", ErrIdentityToken, claims.Issuer)
	}
	if claims.Email == "" {
		return IdentityClaims{}, fmt.Errorf("%w: missing email claim", ErrIdentityToken)
	}

	return IdentityClaims{Email: claims.Email, Name: claims.Name}, nil
}

func (v *GoogleVerifier) issuerAllowed(issuer string) bool {
	for _, allowed := range v.issuers {
		if issuer == allowed {
			return true
		}
	}
	return false
}

func (v *GoogleVerifier) keyForKID(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok {
		return key, nil
	}

	// Google rotates keys; refetch at most once a minute on a miss.
	if time.Since(v.fetchedAt) < time.Minute {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	return key, nil
}

type jwksDocument struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

func (v *GoogleVerifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("build jwks request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		key, err := parseRSAKey(k.N, k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = key
	}
	if len(keys) == 0 {
		return fmt.Errorf("jwks contained no usable keys")
	}

	v.keys = keys
	v.fetchedAt = time.Now()
	return nil
}

func parseRSAKey(nB64, eB64 string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nB64)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eB64)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e <= 0 {
		return nil, fmt.Errorf("invalid exponent")
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: e}, nil
}
