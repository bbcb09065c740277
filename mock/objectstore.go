package mock

import (
	"context"

	"github.com/buzkaaclicker/useravatar"
)

type ObjectStore struct {
	UploadFn func(ctx context.Context, bucket string, key string, object useravatar.Object, upsert bool) error

	PublicUrlFn func(bucket string, key string) string
}

func (s ObjectStore) Upload(ctx context.Context, bucket string, key string, object useravatar.Object, upsert bool) error {
	return s.UploadFn(ctx, bucket, key, object, upsert)
}

func (s ObjectStore) PublicUrl(bucket string, key string) string {
	return s.PublicUrlFn(bucket, key)
}
