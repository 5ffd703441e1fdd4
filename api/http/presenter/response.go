package presenter

import "github.com/gofiber/fiber/v2"

// GenericFailure — единственный текст ошибки, который видит пользователь.
// Детали сбоя остаются в серверном логе.
const GenericFailure = "エラーが発生しました。もう一度お試しください。"

type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}
