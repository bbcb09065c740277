// Package s3store keeps avatars in any S3 compatible object storage
// (minio, AWS S3, self-hosted supabase storage backends).
package s3store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/buzkaaclicker/useravatar"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrObjectExists = errors.New("resource already exists")

const cacheControl = "max-age=3600"

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	// Base of public urls, e.g. https://cdn.example.com. Objects are served
	// as PublicBaseUrl/bucket/key.
	PublicBaseUrl string
}

type Store struct {
	Client        *minio.Client
	PublicBaseUrl string
}

var _ useravatar.ObjectStore = (*Store)(nil)

func New(config Config) (*Store, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	publicBaseUrl := config.PublicBaseUrl
	if publicBaseUrl == "" {
		scheme := "http"
		if config.UseSSL {
			scheme = "https"
		}
		publicBaseUrl = scheme + "://" + config.Endpoint
	}
	return &Store{Client: client, PublicBaseUrl: strings.TrimRight(publicBaseUrl, "/")}, nil
}

func (s *Store) Upload(ctx context.Context, bucket string, key string,
	object useravatar.Object, upsert bool) error {
	if !upsert {
		_, err := s.Client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return ErrObjectExists
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return fmt.Errorf("stat object: %w", err)
		}
	}

	size := object.Size
	if size <= 0 {
		size = -1
	}
	_, err := s.Client.PutObject(ctx, bucket, key, object.Body, size, minio.PutObjectOptions{
		ContentType:  object.ContentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (s *Store) PublicUrl(bucket string, key string) string {
	return s.PublicBaseUrl + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}
