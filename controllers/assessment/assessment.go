package controllers

import (
	"time"

	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	assessmentValidator "onlynerds/validators/assessment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetAssessmentByModule returns the module's assessment, or null data when
// none exists yet.
func GetAssessmentByModule(c *fiber.Ctx) error {
	var assessment models.Assessment
	err := database.Database.Db.Where("module_id = ?", c.Params("moduleId")).First(&assessment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No assessment for this module.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment fetched successfully!", assessment)
}

// UpsertAssessment creates the module's assessment or overwrites its
// question list. One assessment per module.
func UpsertAssessment(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*assessmentValidator.UpsertAssessmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	moduleID := c.Params("moduleId")
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.CreatorID != wallet {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course creator can edit its assessments!", nil)
	}

	var module models.Module
	if err := db.Where("id = ? AND course_id = ?", moduleID, reqData.CourseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var assessment models.Assessment
	if err := db.Where("module_id = ?", moduleID).First(&assessment).Error; err != nil {
		assessment = models.Assessment{
			ID:        uuid.NewString(),
			ModuleID:  moduleID,
			CourseID:  reqData.CourseID,
			Type:      "mcq",
			Questions: reqData.Questions,
		}
		if err := db.Create(&assessment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment created successfully!", assessment)
	}

	assessment.Questions = reqData.Questions
	assessment.UpdatedAt = time.Now()
	if err := db.Save(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment updated successfully!", assessment)
}

// DeleteAssessment removes the module's assessment.
func DeleteAssessment(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var assessment models.Assessment
	if err := db.Where("module_id = ?", c.Params("moduleId")).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ?", assessment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.CreatorID != wallet {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course creator can edit its assessments!", nil)
	}

	if err := db.Delete(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment deleted successfully!", nil)
}
