package controllers

import (
	"math"
	"strings"

	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	courseValidator "onlynerds/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseWithRanking is the wire shape for a course joined with its ranking.
type CourseWithRanking struct {
	models.Course
	Ranking *models.CourseRanking `json:"ranking,omitempty"`
}

// attachRankings loads the rankings for a batch of courses in one query.
func attachRankings(db *gorm.DB, courses []models.Course) ([]CourseWithRanking, error) {
	result := make([]CourseWithRanking, len(courses))
	if len(courses) == 0 {
		return result, nil
	}

	courseIDs := make([]string, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	var rankings []models.CourseRanking
	if err := db.Where("course_id IN ?", courseIDs).Find(&rankings).Error; err != nil {
		return nil, err
	}

	byCourse := make(map[string]models.CourseRanking, len(rankings))
	for _, ranking := range rankings {
		byCourse[ranking.CourseID] = ranking
	}

	for i, course := range courses {
		result[i] = CourseWithRanking{Course: course}
		if ranking, ok := byCourse[course.ID]; ok {
			r := ranking
			result[i].Ranking = &r
		}
	}
	return result, nil
}

// CreateCourse creates a course and its zeroed ranking in one transaction.
func CreateCourse(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	isPublic := true
	if reqData.IsPublic != nil {
		isPublic = *reqData.IsPublic
	}

	course := models.Course{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(reqData.Name),
		Description: reqData.Description,
		Background:  reqData.Background,
		CreatorID:   wallet,
		IsPublic:    isPublic,
		Categories:  reqData.Categories,
		Difficulty:  reqData.Difficulty,
		IsOriginal:  true,
	}
	ranking := models.CourseRanking{
		ID:        uuid.NewString(),
		CourseID:  course.ID,
		CreatorID: wallet,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		return tx.Create(&ranking).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", CourseWithRanking{
		Course:  course,
		Ranking: &ranking,
	})
}

// UpdateCourse merges only the provided fields into a course owned by the caller.
func UpdateCourse(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.CreatorID != wallet {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course creator can update it!", nil)
	}

	if reqData.Name != nil {
		course.Name = strings.TrimSpace(*reqData.Name)
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Background != nil {
		course.Background = *reqData.Background
	}
	if reqData.Categories != nil {
		course.Categories = *reqData.Categories
	}
	if reqData.Difficulty != nil {
		course.Difficulty = *reqData.Difficulty
	}
	if reqData.IsPublic != nil {
		course.IsPublic = *reqData.IsPublic
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// GetCourseList returns public courses joined with rankings, filtered,
// paginated and sorted.
func GetCourseList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.CourseListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	query := db.Model(&models.Course{}).Where("courses.is_public = ?", true)

	if reqData.Category != "" {
		// categories is a JSON array of a closed enum; a quoted LIKE match
		// works on both postgres and sqlite
		query = query.Where("CAST(categories AS TEXT) LIKE ?", `%"`+reqData.Category+`"%`)
	}
	if reqData.Difficulty != "" {
		query = query.Where("difficulty = ?", reqData.Difficulty)
	}
	if reqData.Search != "" {
		pattern := "%" + strings.ToLower(reqData.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	find := query.Offset(offset).Limit(reqData.Limit)
	if reqData.SortBy == "score" {
		find = find.
			Select("courses.*").
			Joins("LEFT JOIN course_rankings ON course_rankings.course_id = courses.id").
			// postgres sorts NULLs first on DESC; unranked courses go last
			Order("course_rankings.score DESC NULLS LAST")
	} else {
		find = find.Order("courses.created_at DESC")
	}

	var courses []models.Course
	if err := find.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	withRankings, err := attachRankings(db, courses)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": withRankings,
		"pagination": fiber.Map{
			"total":      total,
			"totalPages": int(math.Ceil(float64(total) / float64(reqData.Limit))),
			"page":       reqData.Page,
			"limit":      reqData.Limit,
		},
	})
}

// GetCourseById returns a single course with its ranking.
func GetCourseById(c *fiber.Ctx) error {
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	result := CourseWithRanking{Course: course}

	var ranking models.CourseRanking
	if err := db.Where("course_id = ?", course.ID).First(&ranking).Error; err == nil {
		result.Ranking = &ranking
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", result)
}

// GetCoursesByCreator returns every course owned by a wallet, with rankings.
func GetCoursesByCreator(c *fiber.Ctx) error {
	address := strings.ToLower(c.Params("address"))

	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("creator_id = ?", address).Order("created_at DESC").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	withRankings, err := attachRankings(db, courses)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": withRankings,
	})
}

// GetTopRatedCourses returns the highest scored public courses.
func GetTopRatedCourses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	db := database.Database.Db

	var courses []models.Course
	err := db.Model(&models.Course{}).
		Select("courses.*").
		Joins("JOIN course_rankings ON course_rankings.course_id = courses.id").
		Where("courses.is_public = ?", true).
		Order("course_rankings.score DESC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch top courses!", nil)
	}

	withRankings, err := attachRankings(db, courses)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch top courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Top courses fetched successfully!", fiber.Map{
		"courses": withRankings,
	})
}

// DeleteCourse removes a course with its ranking, votes, modules and
// assessments in one transaction. Forks of the course are untouched.
func DeleteCourse(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.CreatorID != wallet {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course creator can delete it!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Assessment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseRanking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
