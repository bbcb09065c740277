package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
)

var _ useravatar.ProfileStore = (*Client)(nil)

func (c *Client) profilesUri(userId useravatar.UserId, selectColumns string) string {
	query := url.Values{}
	query.Set("select", selectColumns)
	query.Set("user_id", "eq."+string(userId))
	return c.baseUrl + "/rest/v1/" + useravatar.ProfileTable + "?" + query.Encode()
}

// Impl of postgrest PATCH /rest/v1/user_profiles?user_id=eq.{id}.
func (c *Client) SetAvatarUrl(ctx context.Context, userId useravatar.UserId, avatarUrl string) (int64, error) {
	payload, err := json.Marshal(map[string]string{"avatar_url": avatarUrl})
	if err != nil {
		return 0, fmt.Errorf("marshal update: %w", err)
	}

	statusCode, body, err := c.do(ctx, request{
		method:      fiber.MethodPatch,
		uri:         c.profilesUri(userId, "user_id"),
		headers:     map[string]string{"Prefer": "return=representation"},
		contentType: fiber.MIMEApplicationJSON,
		body:        payload,
	})
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	if statusCode != fiber.StatusOK {
		return 0, parseAPIError(statusCode, body)
	}

	var rows []json.RawMessage
	if err = json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("unmarshal updated rows: %w", err)
	}
	return int64(len(rows)), nil
}

// Impl of postgrest GET /rest/v1/user_profiles?select=avatar_url&user_id=eq.{id}.
func (c *Client) AvatarUrl(ctx context.Context, userId useravatar.UserId) (*string, error) {
	statusCode, body, err := c.do(ctx, request{
		method:  fiber.MethodGet,
		uri:     c.profilesUri(userId, "avatar_url"),
		headers: map[string]string{fiber.HeaderAccept: fiber.MIMEApplicationJSON},
	})
	if err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}
	if statusCode != fiber.StatusOK {
		return nil, parseAPIError(statusCode, body)
	}

	var rows []struct {
		AvatarUrl *string `json:"avatar_url"`
	}
	if err = json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return rows[0].AvatarUrl, nil
	default:
		return nil, ErrMultipleRows
	}
}
