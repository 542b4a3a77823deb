package utils

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the fields read from a backend-issued access token.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// ParseTokenClaims reads the claims of a backend token. The signature is
// checked only when secret is non-empty; expiry is always enforced.
func ParseTokenClaims(tokenString, secret string) (TokenClaims, error) {
	var (
		token *jwt.Token
		err   error
	)
	if secret == "" {
		parser := new(jwt.Parser)
		token, _, err = parser.ParseUnverified(tokenString, jwt.MapClaims{})
	} else {
		token, err = jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
	}
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}
	if err := claims.Valid(); err != nil {
		return TokenClaims{}, err
	}

	return TokenClaims{
		Subject: firstString(claims, "sub", "id", "_id", "userId"),
		Email:   firstString(claims, "email"),
		Role:    firstString(claims, "role"),
	}, nil
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := claims[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
