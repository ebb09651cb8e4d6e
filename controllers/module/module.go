package controllers

import (
	"strings"

	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	moduleValidator "onlynerds/validators/module"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requireCourseOwner loads a course and checks the caller owns it.
func requireCourseOwner(db *gorm.DB, courseID, wallet string) (models.Course, int, string) {
	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return course, fiber.StatusNotFound, "Course not found!"
	}
	if course.CreatorID != wallet {
		return course, fiber.StatusForbidden, "Only the course creator can edit its modules!"
	}
	return course, 0, ""
}

// GetModulesByCourse lists a course's modules ordered by index.
func GetModulesByCourse(c *fiber.Ctx) error {
	var modules []models.Module
	err := database.Database.Db.
		Where("course_id = ?", c.Params("courseId")).
		Order("order_index asc").
		Find(&modules).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// GetModuleById returns a single module.
func GetModuleById(c *fiber.Ctx) error {
	var module models.Module
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// CreateModule adds a module to a course owned by the caller.
func CreateModule(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*moduleValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if _, status, msg := requireCourseOwner(db, reqData.CourseID, wallet); status != 0 {
		return middleware.JsonResponse(c, status, false, msg, nil)
	}

	module := models.Module{
		ID:       uuid.NewString(),
		CourseID: reqData.CourseID,
		Name:     strings.TrimSpace(reqData.Name),
		Content:  strings.TrimSpace(reqData.Content),
		Media:    reqData.Media,
		Index:    reqData.Index,
	}

	if err := db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module created successfully!", module)
}

// UpdateModule merges the provided fields into a module.
func UpdateModule(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*moduleValidator.UpdateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ?", c.Params("id")).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if _, status, msg := requireCourseOwner(db, module.CourseID, wallet); status != 0 {
		return middleware.JsonResponse(c, status, false, msg, nil)
	}

	if reqData.Name != nil {
		module.Name = strings.TrimSpace(*reqData.Name)
	}
	if reqData.Content != nil {
		module.Content = strings.TrimSpace(*reqData.Content)
	}
	if reqData.Media != nil {
		module.Media = *reqData.Media
	}
	if reqData.Index != nil {
		module.Index = *reqData.Index
	}

	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule removes a module together with its assessment.
func DeleteModule(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ?", c.Params("id")).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if _, status, msg := requireCourseOwner(db, module.CourseID, wallet); status != 0 {
		return middleware.JsonResponse(c, status, false, msg, nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", module.ID).Delete(&models.Assessment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&module).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// ReorderModules bulk-applies new index values. Index uniqueness is not
// enforced; the editor owns the ordering it sends.
func ReorderModules(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReorder").(*moduleValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if _, status, msg := requireCourseOwner(db, reqData.CourseID, wallet); status != 0 {
		return middleware.JsonResponse(c, status, false, msg, nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, order := range reqData.Orders {
			res := tx.Model(&models.Module{}).
				Where("id = ? AND course_id = ?", order.ModuleID, reqData.CourseID).
				Update("order_index", order.Index)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules reordered successfully!", nil)
}

// DuplicateModule copies a module right after the original, shifting every
// later module down by one.
func DuplicateModule(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ?", c.Params("id")).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if _, status, msg := requireCourseOwner(db, module.CourseID, wallet); status != 0 {
		return middleware.JsonResponse(c, status, false, msg, nil)
	}

	copied := models.Module{
		ID:       uuid.NewString(),
		CourseID: module.CourseID,
		Name:     module.Name + " (Copy)",
		Content:  module.Content,
		Media:    module.Media,
		Index:    module.Index + 1,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Make room first so the copy keeps index+1
		err := tx.Model(&models.Module{}).
			Where("course_id = ? AND order_index > ?", module.CourseID, module.Index).
			Update("order_index", gorm.Expr("order_index + 1")).Error
		if err != nil {
			return err
		}
		return tx.Create(&copied).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to duplicate module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module duplicated successfully!", copied)
}
