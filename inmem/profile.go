package inmem

import (
	"context"
	"sync"

	"github.com/buzkaaclicker/useravatar"
)

type ProfileStore struct {
	avatarUrls map[useravatar.UserId]*string
	mutex      sync.RWMutex
}

func NewProfileStore() ProfileStore {
	return ProfileStore{
		avatarUrls: map[useravatar.UserId]*string{},
		mutex:      sync.RWMutex{},
	}
}

var _ useravatar.ProfileStore = (*ProfileStore)(nil)

// CreateProfile inserts an empty profile row for userId.
func (s *ProfileStore) CreateProfile(userId useravatar.UserId) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.avatarUrls[userId]; !ok {
		s.avatarUrls[userId] = nil
	}
}

func (s *ProfileStore) SetAvatarUrl(ctx context.Context, userId useravatar.UserId, url string) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.avatarUrls[userId]; !ok {
		return 0, nil
	}
	s.avatarUrls[userId] = &url
	return 1, nil
}

func (s *ProfileStore) AvatarUrl(ctx context.Context, userId useravatar.UserId) (*string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	avatarUrl := s.avatarUrls[userId]
	if avatarUrl == nil {
		return nil, nil
	}
	u := *avatarUrl
	return &u, nil
}

func (s *ProfileStore) HasProfile(userId useravatar.UserId) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.avatarUrls[userId]
	return ok
}
