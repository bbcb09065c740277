// Package supabase talks to the GoTrue, Storage and PostgREST apis of a
// supabase project on behalf of a single caller.
package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
)

// Upper bound of a single api call when the caller's context has no
// earlier deadline.
const requestTimeout = 10 * time.Second

type Config struct {
	// Project url, e.g. https://xyzcompany.supabase.co
	Url     string
	AnonKey string
}

type Backend struct {
	Config Config
}

var _ useravatar.Backend = Backend{}

func (b Backend) Connect(authorization string) useravatar.Client {
	client := NewClient(b.Config, authorization)
	return useravatar.Client{
		Users:    client,
		Objects:  client,
		Profiles: client,
	}
}

// Client forwards the caller's Authorization header on every request.
type Client struct {
	baseUrl       string
	anonKey       string
	authorization string
}

func NewClient(config Config, authorization string) *Client {
	return &Client{
		baseUrl:       strings.TrimRight(config.Url, "/"),
		anonKey:       config.AnonKey,
		authorization: authorization,
	}
}

type request struct {
	method      string
	uri         string
	headers     map[string]string
	contentType string
	body        []byte
}

func (c *Client) do(ctx context.Context, r request) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	timeout := requestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); until < timeout {
			timeout = until
		}
	}
	if timeout <= 0 {
		return 0, nil, context.DeadlineExceeded
	}

	// Reuse keeps Bytes from returning the agent to the pool, so it is
	// released exactly once, here.
	agent := fiber.AcquireAgent().Reuse().Timeout(timeout)
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(r.method)
	req.SetRequestURI(r.uri)

	req.Header.Set("apikey", c.anonKey)
	if c.authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, c.authorization)
	} else {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.anonKey)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if r.contentType != "" {
		req.Header.SetContentType(r.contentType)
	}
	if r.body != nil {
		req.SetBody(r.body)
	}

	err := agent.Parse()
	if err != nil {
		return 0, nil, fmt.Errorf("agent parse: %w", err)
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) != 0 {
		return 0, nil, fmt.Errorf("agent bytes: %v", errs)
	}
	return statusCode, body, nil
}
