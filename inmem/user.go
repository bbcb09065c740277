package inmem

import (
	"context"
	"strings"
	"sync"

	"github.com/buzkaaclicker/useravatar"
)

// UserDirectory maps bearer tokens to users.
type UserDirectory struct {
	users map[string]useravatar.User
	mutex sync.RWMutex
}

func NewUserDirectory() UserDirectory {
	return UserDirectory{
		users: map[string]useravatar.User{},
		mutex: sync.RWMutex{},
	}
}

func (d *UserDirectory) Register(token string, user useravatar.User) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.users[token] = user
}

// Caller returns a resolver for the user holding the bearer token from
// authorization.
func (d *UserDirectory) Caller(authorization string) useravatar.UserResolver {
	return caller{directory: d, authorization: authorization}
}

type caller struct {
	directory     *UserDirectory
	authorization string
}

func (c caller) CurrentUser(ctx context.Context) (useravatar.User, error) {
	if !strings.HasPrefix(c.authorization, "Bearer ") {
		return useravatar.User{}, useravatar.ErrNotAuthenticated
	}
	token := strings.TrimPrefix(c.authorization, "Bearer ")

	c.directory.mutex.RLock()
	defer c.directory.mutex.RUnlock()

	user, ok := c.directory.users[token]
	if !ok {
		return useravatar.User{}, useravatar.ErrNotAuthenticated
	}
	return user, nil
}
