package rest

import "github.com/gofiber/fiber/v2"

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

func setCorsHeaders(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, corsAllowOrigin)
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
}

// Answers preflight requests without touching any backend.
func preflightHandler(ctx *fiber.Ctx) error {
	if ctx.Method() != fiber.MethodOptions {
		return ctx.Next()
	}
	setCorsHeaders(ctx)
	return ctx.SendString("ok")
}
