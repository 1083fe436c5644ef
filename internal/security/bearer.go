package security

import (
	"errors"
	"strings"
)

var ErrNoBearerToken = errors.New("no bearer token")

const bearerPrefix = "Bearer "

// BearerToken extracts the token from an Authorization header value.
// The scheme prefix is matched case-insensitively.
func BearerToken(header string) (string, error) {
	if len(header) <= len(bearerPrefix) {
		return "", ErrNoBearerToken
	}
	if !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrNoBearerToken
	}
	token := header[len(bearerPrefix):]
	if token == "" {
		return "", ErrNoBearerToken
	}
	return token, nil
}
