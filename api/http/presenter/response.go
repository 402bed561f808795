package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse — конверт ошибки; ключ detail совместим с клиентским
// приложением.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, detail string) error {
	return JSON(c, status, ErrorResponse{Detail: detail})
}
