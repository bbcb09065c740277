package persistent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/buzkaaclicker/useravatar"
	"github.com/uptrace/bun"
)

type Profile struct {
	bun.BaseModel `bun:"table:user_profiles"`

	Id        int64          `bun:",pk,autoincrement"`
	UserId    string         `bun:",unique,notnull"`
	AvatarUrl sql.NullString
}

// ProfileStore reads and writes user_profiles directly, without row level
// security. Every query is scoped to the resolved user id.
type ProfileStore struct {
	DB *bun.DB
}

var _ useravatar.ProfileStore = (*ProfileStore)(nil)

func (s *ProfileStore) SetAvatarUrl(ctx context.Context, userId useravatar.UserId, url string) (int64, error) {
	res, err := s.DB.NewUpdate().
		Model((*Profile)(nil)).
		Set("avatar_url=?", url).
		Where("user_id=?", string(userId)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

func (s *ProfileStore) AvatarUrl(ctx context.Context, userId useravatar.UserId) (*string, error) {
	profile := new(Profile)
	err := s.DB.NewSelect().
		Model(profile).
		Column("avatar_url").
		Where("user_id=?", string(userId)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select profile: %w", err)
	}
	if !profile.AvatarUrl.Valid {
		return nil, nil
	}
	return &profile.AvatarUrl.String, nil
}
