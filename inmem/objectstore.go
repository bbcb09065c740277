package inmem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/buzkaaclicker/useravatar"
)

var ErrObjectExists = errors.New("resource already exists")

type StoredObject struct {
	ContentType string
	Data        []byte
}

type ObjectStore struct {
	// Public urls are built as BaseUrl/bucket/key.
	BaseUrl string

	objects map[string]StoredObject
	mutex   sync.RWMutex
}

func NewObjectStore(baseUrl string) ObjectStore {
	return ObjectStore{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		objects: map[string]StoredObject{},
		mutex:   sync.RWMutex{},
	}
}

var _ useravatar.ObjectStore = (*ObjectStore)(nil)

func (s *ObjectStore) Upload(ctx context.Context, bucket string, key string,
	object useravatar.Object, upsert bool) error {
	data, err := io.ReadAll(object.Body)
	if err != nil {
		return fmt.Errorf("read object body: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	path := bucket + "/" + key
	if _, ok := s.objects[path]; ok && !upsert {
		return ErrObjectExists
	}
	s.objects[path] = StoredObject{ContentType: object.ContentType, Data: data}
	return nil
}

func (s *ObjectStore) PublicUrl(bucket string, key string) string {
	return s.BaseUrl + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

func (s *ObjectStore) Object(bucket string, key string) (StoredObject, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	o, ok := s.objects[bucket+"/"+key]
	return o, ok
}

// Keys lists stored keys of bucket in no particular order.
func (s *ObjectStore) Keys(bucket string) []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.objects))
	for path := range s.objects {
		if strings.HasPrefix(path, bucket+"/") {
			keys = append(keys, strings.TrimPrefix(path, bucket+"/"))
		}
	}
	return keys
}
