package moduleValidator

import (
	"strings"

	"onlynerds/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateModuleRequest struct {
	CourseID string   `json:"course_id"`
	Name     string   `json:"name"`
	Content  string   `json:"content"`
	Media    []string `json:"media"`
	Index    int      `json:"index"`
}

type UpdateModuleRequest struct {
	Name    *string   `json:"name"`
	Content *string   `json:"content"`
	Media   *[]string `json:"media"`
	Index   *int      `json:"index"`
}

type ModuleOrder struct {
	ModuleID string `json:"module_id"`
	Index    int    `json:"index"`
}

type ReorderRequest struct {
	CourseID string        `json:"course_id"`
	Orders   []ModuleOrder `json:"orders"`
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Index < 0 {
			errors["index"] = "Index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.Index != nil && *reqData.Index < 0 {
			errors["index"] = "Index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

func ReorderModules() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["course_id"] = "Course ID is required!"
		}
		if len(reqData.Orders) == 0 {
			errors["orders"] = "At least one module order is required!"
		}
		for _, order := range reqData.Orders {
			if strings.TrimSpace(order.ModuleID) == "" {
				errors["orders"] = "Every order entry needs a module_id!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
