package courseValidator

import (
	"strings"

	"onlynerds/middleware"
	"onlynerds/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Background  string   `json:"background"`
	Categories  []string `json:"categories"`
	Difficulty  string   `json:"difficulty"`
	IsPublic    *bool    `json:"is_public"`
}

type UpdateCourseRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Background  *string   `json:"background"`
	Categories  *[]string `json:"categories"`
	Difficulty  *string   `json:"difficulty"`
	IsPublic    *bool     `json:"is_public"`
}

type CourseListRequest struct {
	Category   string
	Difficulty string
	Search     string
	Page       int
	Limit      int
	SortBy     string
}

type VoteRequest struct {
	Direction string `json:"direction"`
}

func validateCategories(categories []string, errors map[string]string) {
	if len(categories) == 0 {
		errors["categories"] = "At least one category is required!"
		return
	}
	for _, cat := range categories {
		if !models.IsValidCategory(cat) {
			errors["categories"] = "Unknown category: " + cat
			return
		}
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		validateCategories(reqData.Categories, errors)

		if !models.IsValidDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be one of Beginner, Intermediate, Advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.Categories != nil {
			validateCategories(*reqData.Categories, errors)
		}
		if reqData.Difficulty != nil && !models.IsValidDifficulty(*reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be one of Beginner, Intermediate, Advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &CourseListRequest{
			Category:   c.Query("category"),
			Difficulty: c.Query("difficulty"),
			Search:     c.Query("search"),
			Page:       c.QueryInt("page", 1),
			Limit:      c.QueryInt("limit", 10),
			SortBy:     c.Query("sortBy", "createdAt"),
		}

		errors := make(map[string]string)

		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Category != "" && !models.IsValidCategory(reqData.Category) {
			errors["category"] = "Unknown category: " + reqData.Category
		}
		if reqData.Difficulty != "" && !models.IsValidDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Unknown difficulty: " + reqData.Difficulty
		}
		if reqData.SortBy != "createdAt" && reqData.SortBy != "score" {
			errors["sortBy"] = "sortBy must be createdAt or score!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func Vote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VoteRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Direction != "up" && reqData.Direction != "down" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"direction": "Direction must be up or down!",
			})
		}

		c.Locals("validatedVote", reqData)
		return c.Next()
	}
}
