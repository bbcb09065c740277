package mock

import (
	"context"

	"github.com/buzkaaclicker/useravatar"
)

type ProfileStore struct {
	SetAvatarUrlFn func(ctx context.Context, userId useravatar.UserId, url string) (int64, error)

	AvatarUrlFn func(ctx context.Context, userId useravatar.UserId) (*string, error)
}

func (s ProfileStore) SetAvatarUrl(ctx context.Context, userId useravatar.UserId, url string) (int64, error) {
	return s.SetAvatarUrlFn(ctx, userId, url)
}

func (s ProfileStore) AvatarUrl(ctx context.Context, userId useravatar.UserId) (*string, error) {
	return s.AvatarUrlFn(ctx, userId)
}
