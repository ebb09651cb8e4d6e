package controllers

import (
	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	"onlynerds/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForkCourse deep-copies a course with its modules and assessments under a
// new owner. The whole copy runs in one transaction: either the complete
// fork exists afterwards or nothing does. Forks start out private.
func ForkCourse(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var original models.Course
	if err := db.Where("id = ?", c.Params("id")).First(&original).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Original course not found!", nil)
	}

	forked := models.Course{
		ID:          uuid.NewString(),
		Name:        original.Name + " (Forked)",
		Description: original.Description,
		Background:  original.Background,
		CreatorID:   wallet,
		IsPublic:    false,
		Categories:  original.Categories,
		Difficulty:  original.Difficulty,
		IsOriginal:  false,
		ForkedFrom:  original.ID,
		ForkedBy:    wallet,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&forked).Error; err != nil {
			return err
		}

		ranking := models.CourseRanking{
			ID:        uuid.NewString(),
			CourseID:  forked.ID,
			CreatorID: wallet,
		}
		if err := tx.Create(&ranking).Error; err != nil {
			return err
		}

		var modules []models.Module
		if err := tx.Where("course_id = ?", original.ID).Order("order_index asc").Find(&modules).Error; err != nil {
			return err
		}

		// old module id -> new module id, for re-pointing assessments
		moduleIDMap := make(map[string]string, len(modules))
		for _, src := range modules {
			copied := models.Module{
				ID:       uuid.NewString(),
				CourseID: forked.ID,
				Name:     src.Name,
				Content:  src.Content,
				Media:    src.Media,
				Index:    src.Index,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
			moduleIDMap[src.ID] = copied.ID
		}

		var assessments []models.Assessment
		if err := tx.Where("course_id = ?", original.ID).Find(&assessments).Error; err != nil {
			return err
		}

		for _, src := range assessments {
			newModuleID, ok := moduleIDMap[src.ModuleID]
			if !ok {
				continue
			}
			copied := models.Assessment{
				ID:        uuid.NewString(),
				ModuleID:  newModuleID,
				CourseID:  forked.ID,
				Type:      src.Type,
				Questions: src.Questions,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fork course!", nil)
	}

	// Tell the original creator, best effort
	var creator models.User
	if err := db.Where("id = ?", original.CreatorID).First(&creator).Error; err == nil {
		utils.SendForkNotificationEmail(creator.Email, original.Name, wallet)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course forked successfully!", forked)
}
