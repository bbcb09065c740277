package supabase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultCacheControl = "max-age=3600"
	defaultContentType  = "application/octet-stream"
)

var _ useravatar.ObjectStore = (*Client)(nil)

func objectPath(bucket string, key string) string {
	segments := strings.Split(strings.Trim(key, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}

// Impl of storage POST /storage/v1/object/{bucket}/{key}.
func (c *Client) Upload(ctx context.Context, bucket string, key string,
	object useravatar.Object, upsert bool) error {
	data, err := io.ReadAll(object.Body)
	if err != nil {
		return fmt.Errorf("read object body: %w", err)
	}
	contentType := object.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	statusCode, body, err := c.do(ctx, request{
		method: fiber.MethodPost,
		uri:    c.baseUrl + "/storage/v1/object/" + objectPath(bucket, key),
		headers: map[string]string{
			"x-upsert":                strconv.FormatBool(upsert),
			fiber.HeaderCacheControl: defaultCacheControl,
		},
		contentType: contentType,
		body:        data,
	})
	if err != nil {
		return fmt.Errorf("upload object: %w", err)
	}
	if statusCode != fiber.StatusOK && statusCode != fiber.StatusCreated {
		return parseAPIError(statusCode, body)
	}
	return nil
}

func (c *Client) PublicUrl(bucket string, key string) string {
	return c.baseUrl + "/storage/v1/object/public/" + objectPath(bucket, key)
}
