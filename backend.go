package useravatar

// Client groups backend services acting on behalf of one caller.
type Client struct {
	Users    UserResolver
	Objects  ObjectStore
	Profiles ProfileStore
}

// Backend creates a client per request. Every downstream call made by the
// client carries authorization (the raw Authorization header) verbatim.
type Backend interface {
	Connect(authorization string) Client
}

type BackendFunc func(authorization string) Client

func (f BackendFunc) Connect(authorization string) Client {
	return f(authorization)
}
