package controllers

import (
	"strings"

	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	userValidator "onlynerds/validators/user"

	"github.com/gofiber/fiber/v2"
)

// GetUser returns a public profile by wallet address.
func GetUser(c *fiber.Ctx) error {
	address := strings.ToLower(c.Params("address"))

	var user models.User
	if err := database.Database.Db.Where("id = ?", address).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// UpdateProfile merges the provided profile fields into the caller's user row.
func UpdateProfile(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", wallet).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Name = strings.TrimSpace(reqData.Name)
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.Avatar != nil {
		user.Avatar = *reqData.Avatar
	}
	if reqData.Email != nil {
		user.Email = *reqData.Email
	}
	if reqData.Github != nil {
		user.Github = *reqData.Github
	}
	if reqData.X != nil {
		user.X = *reqData.X
	}
	if reqData.Linkedin != nil {
		user.Linkedin = *reqData.Linkedin
	}

	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// GetProfileComplete reports whether a wallet finished onboarding: a name
// different from the bootstrap default, plus email and bio.
func GetProfileComplete(c *fiber.Ctx) error {
	address := strings.ToLower(c.Params("address"))

	complete := false

	var user models.User
	if err := database.Database.Db.Where("id = ?", address).First(&user).Error; err == nil {
		complete = user.Name != "" && user.Email != "" && user.Bio != ""
		if len(address) >= 6 && user.Name == "User_"+address[:6] {
			complete = false
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile completeness checked!", fiber.Map{
		"complete": complete,
	})
}

// GetUserStats aggregates course and ranking totals for a wallet.
func GetUserStats(c *fiber.Ctx) error {
	address := strings.ToLower(c.Params("address"))

	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("creator_id = ?", address).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user stats!", nil)
	}

	stats := fiber.Map{
		"total_courses":    len(courses),
		"original_courses": 0,
		"forked_courses":   0,
		"public_courses":   0,
		"private_courses":  0,
		"total_upvotes":    0,
		"total_downvotes":  0,
		"average_score":    float64(0),
	}

	originals, forks, public, private := 0, 0, 0, 0
	courseIDs := make([]string, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
		if course.IsOriginal {
			originals++
		} else {
			forks++
		}
		if course.IsPublic {
			public++
		} else {
			private++
		}
	}
	stats["original_courses"] = originals
	stats["forked_courses"] = forks
	stats["public_courses"] = public
	stats["private_courses"] = private

	if len(courseIDs) > 0 {
		var rankings []models.CourseRanking
		if err := db.Where("course_id IN ?", courseIDs).Find(&rankings).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user stats!", nil)
		}

		upvotes, downvotes, scoreSum := 0, 0, 0
		for _, ranking := range rankings {
			upvotes += ranking.Upvotes
			downvotes += ranking.Downvotes
			scoreSum += ranking.Score
		}
		stats["total_upvotes"] = upvotes
		stats["total_downvotes"] = downvotes
		if len(rankings) > 0 {
			stats["average_score"] = float64(scoreSum) / float64(len(rankings))
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User stats fetched successfully!", stats)
}
