package mock

import (
	"context"

	"github.com/buzkaaclicker/useravatar"
)

type UserResolver struct {
	CurrentUserFn func(ctx context.Context) (useravatar.User, error)
}

func (r UserResolver) CurrentUser(ctx context.Context) (useravatar.User, error) {
	return r.CurrentUserFn(ctx)
}
