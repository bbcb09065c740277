// Package jwtauth resolves callers from supabase access tokens without a
// round trip to gotrue.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/buzkaaclicker/useravatar"
	"github.com/golang-jwt/jwt/v4"
)

const defaultAudience = "authenticated"

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verifier checks HS256 tokens signed with the project's jwt secret.
type Verifier struct {
	Secret string
	// Defaults to "authenticated".
	Audience string
}

func (v Verifier) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	audience := v.Audience
	if audience == "" {
		audience = defaultAudience
	}
	if !claims.VerifyAudience(audience, true) {
		return nil, fmt.Errorf("invalid audience %v", claims.Audience)
	}
	if claims.Subject == "" {
		return nil, errors.New("missing subject")
	}
	return claims, nil
}

// Caller returns a resolver for the bearer token in authorization.
func (v Verifier) Caller(authorization string) useravatar.UserResolver {
	return caller{verifier: v, authorization: authorization}
}

type caller struct {
	verifier      Verifier
	authorization string
}

func (c caller) CurrentUser(ctx context.Context) (useravatar.User, error) {
	parts := strings.SplitN(c.authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return useravatar.User{}, useravatar.ErrNotAuthenticated
	}
	claims, err := c.verifier.Verify(parts[1])
	if err != nil {
		return useravatar.User{}, &useravatar.Error{
			Kind:    useravatar.KindAuthentication,
			Message: useravatar.ErrNotAuthenticated.Message,
			Err:     err,
		}
	}
	return useravatar.User{Id: useravatar.UserId(claims.Subject), Email: claims.Email}, nil
}
