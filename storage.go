package useravatar

import (
	"context"
	"io"
	"strings"
)

const AvatarBucket = "avatars"

// Object is a single upload payload. Body is consumed by ObjectStore.Upload.
type Object struct {
	// Original file name, used only to derive the storage key.
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ObjectStore interface {
	// Upload stores object under bucket/key. With upsert an existing object
	// is overwritten, otherwise the upload fails.
	Upload(ctx context.Context, bucket string, key string, object Object, upsert bool) error

	// PublicUrl returns the unsigned url under which bucket/key is served.
	PublicUrl(bucket string, key string) string
}

// FileExtension returns everything after the last dot of name.
// A name without a dot is returned whole.
func FileExtension(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}

// AvatarKey returns the storage key of the avatar uploaded as fileName.
func AvatarKey(userId UserId, fileName string) string {
	return string(userId) + "." + FileExtension(fileName)
}
