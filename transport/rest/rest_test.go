package rest

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	assert := assert.New(t)

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})
	app.Get("/home", func(ctx *fiber.Ctx) error {
		return ctx.SendString(`{"im":"working"}`)
	})
	app.Get("/validation", func(ctx *fiber.Ctx) error {
		return useravatar.ErrNoFile
	})
	app.Get("/unclassified", func(ctx *fiber.Ctx) error {
		return errors.New("connection refused")
	})
	app.Get("/too_large", func(ctx *fiber.Ctx) error {
		return fiber.ErrRequestEntityTooLarge
	})
	app.Get("/teapot", func(ctx *fiber.Ctx) error {
		return &fiber.Error{Code: fiber.StatusTeapot}
	})
	app.Get("/coded", func(ctx *fiber.Ctx) error {
		return &fiber.Error{Code: fiber.StatusConflict, Message: 42}
	})
	app.Get("/custom", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "maintenance")
	})
	app.Use(NotFoundHandler)

	cases := []struct {
		path       string
		returnCode int
		returnBody string
	}{
		{path: "/unknown_path", returnCode: fiber.StatusNotFound,
			returnBody: JsonErrorResponse("Not Found")},
		{path: "/home", returnCode: fiber.StatusOK,
			returnBody: `{"im":"working"}`},
		{path: "/validation", returnCode: fiber.StatusBadRequest,
			returnBody: JsonErrorResponse("No file provided")},
		{path: "/unclassified", returnCode: fiber.StatusBadRequest,
			returnBody: JsonErrorResponse("connection refused")},
		{path: "/too_large", returnCode: fiber.StatusRequestEntityTooLarge,
			returnBody: JsonErrorResponse("Request Entity Too Large")},
		{path: "/teapot", returnCode: fiber.StatusTeapot,
			returnBody: JsonErrorResponse("I'm a teapot")},
		{path: "/coded", returnCode: fiber.StatusConflict,
			returnBody: JsonErrorResponse("42")},
		{path: "/custom", returnCode: fiber.StatusServiceUnavailable,
			returnBody: JsonErrorResponse("maintenance")},
	}

	for _, useCase := range cases {
		assertMsg := "status code: " + useCase.path

		req := httptest.NewRequest("GET", useCase.path, nil)
		resp, body, err := doRequest(app, req)
		if !assert.NoError(err, assertMsg) {
			continue
		}
		assert.Equal(useCase.returnCode, resp.StatusCode, assertMsg)
		assert.Equal(useCase.returnBody, body, assertMsg)
	}
}
