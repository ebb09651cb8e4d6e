package authValidator

import (
	"strings"

	"onlynerds/middleware"
	"onlynerds/utils"

	"github.com/gofiber/fiber/v2"
)

type NonceRequest struct {
	Address string `json:"address"`
}

type LoginRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

func Nonce() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NonceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !utils.IsWalletAddress(strings.TrimSpace(reqData.Address)) {
			errors["address"] = "A valid wallet address is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Address = strings.ToLower(strings.TrimSpace(reqData.Address))
		c.Locals("validatedNonce", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !utils.IsWalletAddress(strings.TrimSpace(reqData.Address)) {
			errors["address"] = "A valid wallet address is required!"
		}
		if strings.TrimSpace(reqData.Signature) == "" {
			errors["signature"] = "Signature is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Address = strings.ToLower(strings.TrimSpace(reqData.Address))
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
