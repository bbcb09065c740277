package inmem

import "github.com/buzkaaclicker/useravatar"

type Backend struct {
	Users    *UserDirectory
	Objects  *ObjectStore
	Profiles *ProfileStore
}

func NewBackend(publicBaseUrl string) Backend {
	users := NewUserDirectory()
	objects := NewObjectStore(publicBaseUrl)
	profiles := NewProfileStore()
	return Backend{
		Users:    &users,
		Objects:  &objects,
		Profiles: &profiles,
	}
}

var _ useravatar.Backend = Backend{}

func (b Backend) Connect(authorization string) useravatar.Client {
	return useravatar.Client{
		Users:    b.Users.Caller(authorization),
		Objects:  b.Objects,
		Profiles: b.Profiles,
	}
}
