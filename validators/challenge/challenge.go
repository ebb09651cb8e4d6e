package challengeValidator

import (
	"strings"

	"onlynerds/middleware"
	"onlynerds/models"
	"onlynerds/utils"
	assessmentValidator "onlynerds/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

type CreateChallengeRequest struct {
	CreatorID string               `json:"creator_id"`
	Name      string               `json:"name"`
	Questions []models.MCQQuestion `json:"questions"`
	Signature string               `json:"signature"`
	Reward    int                  `json:"reward"`
}

type UpdateChallengeRequest struct {
	CreatorID string                `json:"creator_id"`
	Name      *string               `json:"name"`
	Questions *[]models.MCQQuestion `json:"questions"`
	Reward    *int                  `json:"reward"`
}

type DeleteChallengeRequest struct {
	CreatorID string `json:"creator_id"`
}

type SubmitChallengeRequest struct {
	ChallengerID string `json:"challenger_id"`
	Answers      []int  `json:"answers"`
	Signature    string `json:"signature"`
}

func CreateChallenge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateChallengeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !utils.IsWalletAddress(reqData.CreatorID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "creator_id must be a valid wallet address!", nil)
		}
		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}
		if strings.TrimSpace(reqData.Signature) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}
		if msg, ok := assessmentValidator.ValidateQuestions(reqData.Questions); !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
		}
		if reqData.Reward < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reward must not be negative!", nil)
		}

		reqData.CreatorID = strings.ToLower(reqData.CreatorID)
		c.Locals("validatedChallenge", reqData)
		return c.Next()
	}
}

func UpdateChallenge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateChallengeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !utils.IsWalletAddress(reqData.CreatorID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "creator_id must be a valid wallet address!", nil)
		}
		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name cannot be empty!", nil)
		}
		if reqData.Questions != nil {
			if msg, ok := assessmentValidator.ValidateQuestions(*reqData.Questions); !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
			}
		}

		reqData.CreatorID = strings.ToLower(reqData.CreatorID)
		c.Locals("validatedChallengeUpdate", reqData)
		return c.Next()
	}
}

func DeleteChallenge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DeleteChallengeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !utils.IsWalletAddress(reqData.CreatorID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "creator_id must be a valid wallet address!", nil)
		}

		reqData.CreatorID = strings.ToLower(reqData.CreatorID)
		c.Locals("validatedChallengeDelete", reqData)
		return c.Next()
	}
}

func SubmitChallenge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitChallengeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !utils.IsWalletAddress(reqData.ChallengerID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "challenger_id must be a valid wallet address!", nil)
		}
		if reqData.Answers == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}
		if strings.TrimSpace(reqData.Signature) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}

		reqData.ChallengerID = strings.ToLower(reqData.ChallengerID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

func ChallengeList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		errors := make(map[string]string)

		if page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if limit < 1 || limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPage", page)
		c.Locals("validatedLimit", limit)
		return c.Next()
	}
}
