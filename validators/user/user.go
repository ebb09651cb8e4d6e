package userValidator

import (
	"strings"

	"onlynerds/middleware"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Email    *string `json:"email"`
	Github   *string `json:"github"`
	X        *string `json:"x"`
	Linkedin *string `json:"linkedin"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Email != nil && *reqData.Email != "" && !strings.Contains(*reqData.Email, "@") {
			errors["email"] = "Email must be a valid address!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
