package assessmentValidator

import (
	"strconv"
	"strings"

	"onlynerds/middleware"
	"onlynerds/models"

	"github.com/gofiber/fiber/v2"
)

type UpsertAssessmentRequest struct {
	CourseID  string               `json:"course_id"`
	Questions []models.MCQQuestion `json:"questions"`
}

// ValidateQuestions checks every MCQ question: prompt text, at least one
// option, correct_option indexing into options.
func ValidateQuestions(questions []models.MCQQuestion) (string, bool) {
	if len(questions) == 0 {
		return "At least one question is required!", false
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return "Question text is required!", false
		}
		if len(q.Options) < 1 {
			return "Every question needs at least one option!", false
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return "correct_option is out of range for question " + strconv.Itoa(i+1) + "!", false
		}
	}
	return "", true
}

func UpsertAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpsertAssessmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "course_id is required!", nil)
		}
		if reqData.Questions == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "questions must be an array!", nil)
		}
		if msg, ok := ValidateQuestions(reqData.Questions); !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, msg, nil)
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}
