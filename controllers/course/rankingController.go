package controllers

import (
	"errors"
	"strings"

	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	courseValidator "onlynerds/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	errRankingNotFound = errors.New("ranking not found")
	errAlreadyVoted    = errors.New("already voted")
)

// isDuplicateVote detects the unique (course_id, voter_id) index firing when
// two votes from the same wallet race past the pre-check.
func isDuplicateVote(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// VoteCourse applies one up/down vote per wallet per course. The counters
// update as a single atomic SQL expression so concurrent votes cannot lose
// updates, and score stays equal to upvotes - downvotes.
func VoteCourse(c *fiber.Ctx) error {
	wallet, ok := c.Locals("walletAddress").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVote").(*courseValidator.VoteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courseID := c.Params("id")
	db := database.Database.Db

	err := db.Transaction(func(tx *gorm.DB) error {
		var ranking models.CourseRanking
		if err := tx.Where("course_id = ?", courseID).First(&ranking).Error; err != nil {
			return errRankingNotFound
		}

		var existing models.CourseVote
		if err := tx.Where("course_id = ? AND voter_id = ?", courseID, wallet).First(&existing).Error; err == nil {
			return errAlreadyVoted
		}

		vote := models.CourseVote{
			CourseID:  courseID,
			VoterID:   wallet,
			Direction: reqData.Direction,
		}
		if err := tx.Create(&vote).Error; err != nil {
			if isDuplicateVote(err) {
				return errAlreadyVoted
			}
			return err
		}

		updates := map[string]interface{}{
			"upvotes": gorm.Expr("upvotes + 1"),
			"score":   gorm.Expr("score + 1"),
		}
		if reqData.Direction == "down" {
			updates = map[string]interface{}{
				"downvotes": gorm.Expr("downvotes + 1"),
				"score":     gorm.Expr("score - 1"),
			}
		}

		return tx.Model(&models.CourseRanking{}).Where("course_id = ?", courseID).Updates(updates).Error
	})

	switch {
	case errors.Is(err, errRankingNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course ranking not found!", nil)
	case errors.Is(err, errAlreadyVoted):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already voted on this course!", nil)
	case err != nil:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply vote!", nil)
	}

	var ranking models.CourseRanking
	if err := db.Where("course_id = ?", courseID).First(&ranking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply vote!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vote applied successfully!", ranking)
}
