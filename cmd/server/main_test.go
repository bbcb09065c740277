package main

import (
	"testing"

	"github.com/buzkaaclicker/useravatar"
	"github.com/buzkaaclicker/useravatar/inmem"
	"github.com/buzkaaclicker/useravatar/jwtauth"
	"github.com/stretchr/testify/assert"
)

func TestComposeBackendWithoutOverrides(t *testing.T) {
	assert := assert.New(t)

	base := inmem.NewBackend("https://x")
	assert.Equal(base, composeBackend(base, nil, nil, nil))
}

func TestComposeBackendOverrides(t *testing.T) {
	assert := assert.New(t)

	base := inmem.NewBackend("https://x")
	objects := inmem.NewObjectStore("https://cdn")
	profiles := inmem.NewProfileStore()
	verifier := &jwtauth.Verifier{Secret: "secret"}

	client := composeBackend(base, verifier, &objects, &profiles).Connect("Bearer token")
	assert.IsType(verifier.Caller(""), client.Users)
	assert.Same(&objects, client.Objects)
	assert.Same(&profiles, client.Profiles)

	client = composeBackend(base, nil, &objects, nil).Connect("Bearer token")
	assert.Equal(base.Connect("Bearer token").Users, client.Users)
	assert.Same(&objects, client.Objects)
	assert.Equal(useravatar.ProfileStore(base.Profiles), client.Profiles)
}
