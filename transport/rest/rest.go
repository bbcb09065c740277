package rest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Every error kind is reported as 400, clients depend on it.
func statusCode(kind useravatar.ErrorKind) int {
	return fiber.StatusBadRequest
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	setCorsHeaders(ctx)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ctx.
			Status(fe.Code).
			JSON(&ErrorResponse{Error: fiberErrorMessage(fe)})
	}

	e := useravatar.BackendFailure(err)
	if e.Kind == useravatar.KindBackend {
		requestLog(ctx).WithError(err).Warningln("Backend failure.")
	}
	return ctx.
		Status(statusCode(e.Kind)).
		JSON(&ErrorResponse{Error: e.Message})
}

func fiberErrorMessage(fe *fiber.Error) string {
	switch message := fe.Message.(type) {
	case string:
		return message
	case nil:
		return utils.StatusMessage(fe.Code)
	default:
		return fmt.Sprint(message)
	}
}

func NotFoundHandler(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound)
}

func JsonErrorResponse(message string) string {
	bytes, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		panic(err)
	}
	return string(bytes)
}
