package useravatar

import "context"

const ProfileTable = "user_profiles"

type ProfileStore interface {
	// SetAvatarUrl updates avatar_url of the row owned by userId and returns
	// the number of affected rows. Missing rows are not created.
	SetAvatarUrl(ctx context.Context, userId UserId, url string) (int64, error)

	// AvatarUrl returns nil if there is no row or the avatar is not set.
	AvatarUrl(ctx context.Context, userId UserId) (*string, error)
}
