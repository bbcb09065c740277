package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
)

type authUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
}

var _ useravatar.UserResolver = (*Client)(nil)

// Impl of gotrue /auth/v1/user.
func (c *Client) CurrentUser(ctx context.Context) (useravatar.User, error) {
	if c.authorization == "" {
		return useravatar.User{}, useravatar.ErrNotAuthenticated
	}

	statusCode, body, err := c.do(ctx, request{
		method: fiber.MethodGet,
		uri:    c.baseUrl + "/auth/v1/user",
	})
	if err != nil {
		return useravatar.User{}, fmt.Errorf("get user: %w", err)
	}

	switch {
	case statusCode == fiber.StatusOK:
	case statusCode >= 400 && statusCode < 500:
		return useravatar.User{}, useravatar.ErrNotAuthenticated
	default:
		return useravatar.User{}, parseAPIError(statusCode, body)
	}

	var user authUser
	if err = json.Unmarshal(body, &user); err != nil {
		return useravatar.User{}, fmt.Errorf("unmarshal user: %w", err)
	}
	if user.Id == "" {
		return useravatar.User{}, useravatar.ErrNotAuthenticated
	}
	return useravatar.User{Id: useravatar.UserId(user.Id), Email: user.Email}, nil
}
