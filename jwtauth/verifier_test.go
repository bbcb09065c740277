package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/buzkaaclicker/useravatar"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims Claims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "8d0fd2b3-9ca7-4d9e-a95f-9e13dded323e",
			Audience:  jwt.ClaimStrings{"authenticated"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "u1@example.com",
		Role:  "authenticated",
	}
}

func TestCallerCurrentUser(t *testing.T) {
	assert := assert.New(t)
	verifier := Verifier{Secret: testSecret}

	token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims())
	user, err := verifier.Caller("Bearer "+token).CurrentUser(context.Background())
	if !assert.NoError(err) {
		return
	}
	assert.Equal(useravatar.User{Id: "8d0fd2b3-9ca7-4d9e-a95f-9e13dded323e", Email: "u1@example.com"}, user)
}

func TestCallerRejected(t *testing.T) {
	assert := assert.New(t)
	verifier := Verifier{Secret: testSecret}

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	anon := validClaims()
	anon.Audience = jwt.ClaimStrings{"anon"}

	noSubject := validClaims()
	noSubject.Subject = ""

	valid := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims())
	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic " + valid,
		"bearer only":     "Bearer",
		"garbage":         "Bearer not.a.jwt",
		"wrong secret":    "Bearer " + signToken(t, "other-secret", jwt.SigningMethodHS256, validClaims()),
		"expired":         "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, expired),
		"anon audience":   "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, anon),
		"missing subject": "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, noSubject),
		"empty secret":    "Bearer " + signToken(t, "", jwt.SigningMethodHS384, validClaims()),
	}
	for name, authorization := range cases {
		_, err := verifier.Caller(authorization).CurrentUser(context.Background())
		assert.ErrorIs(err, useravatar.ErrNotAuthenticated, name)
	}
}
