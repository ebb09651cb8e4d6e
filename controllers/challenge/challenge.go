package controllers

import (
	"math"
	"time"

	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	"onlynerds/utils"
	challengeValidator "onlynerds/validators/challenge"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateChallenge stores a wallet-signed MCQ challenge. The signature is
// verified against creator_id before anything is trusted.
func CreateChallenge(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChallenge").(*challengeValidator.CreateChallengeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !utils.VerifySignature(reqData.CreatorID, utils.ChallengeMessage(reqData.Name), reqData.Signature) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Signature verification failed!", nil)
	}

	challenge := models.Challenge{
		ID:        uuid.NewString(),
		CreatorID: reqData.CreatorID,
		Name:      reqData.Name,
		Type:      "mcq",
		Questions: reqData.Questions,
		Signature: reqData.Signature,
		Reward:    reqData.Reward,
	}

	if err := database.Database.Db.Create(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Challenge created successfully!", challenge)
}

// GetChallenges lists challenges, newest first, paginated.
func GetChallenges(c *fiber.Ctx) error {
	page := c.Locals("validatedPage").(int)
	limit := c.Locals("validatedLimit").(int)

	db := database.Database.Db

	var total int64
	if err := db.Model(&models.Challenge{}).Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch challenges!", nil)
	}

	var challenges []models.Challenge
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&challenges).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch challenges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenges fetched successfully!", fiber.Map{
		"challenges": challenges,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
		"page":       page,
	})
}

// GetChallenge returns one challenge with its submissions.
func GetChallenge(c *fiber.Ctx) error {
	db := database.Database.Db

	var challenge models.Challenge
	if err := db.Where("id = ?", c.Params("id")).First(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challenge not found!", nil)
	}

	var submissions []models.ChallengeSubmission
	db.Where("challenge_id = ?", challenge.ID).Find(&submissions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenge fetched successfully!", fiber.Map{
		"challenge":   challenge,
		"submissions": submissions,
	})
}

// UpdateChallenge applies partial fields when creator_id matches. The same
// "not found" answer covers a wrong creator, so existence never leaks.
func UpdateChallenge(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChallengeUpdate").(*challengeValidator.UpdateChallengeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var challenge models.Challenge
	if err := db.Where("id = ? AND creator_id = ?", c.Params("id"), reqData.CreatorID).First(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challenge not found or unauthorized!", nil)
	}

	if reqData.Name != nil {
		challenge.Name = *reqData.Name
	}
	if reqData.Questions != nil {
		challenge.Questions = *reqData.Questions
	}
	if reqData.Reward != nil {
		challenge.Reward = *reqData.Reward
	}

	if err := db.Save(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenge updated successfully!", challenge)
}

// DeleteChallenge removes a challenge and its submissions when creator_id matches.
func DeleteChallenge(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChallengeDelete").(*challengeValidator.DeleteChallengeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var challenge models.Challenge
	if err := db.Where("id = ? AND creator_id = ?", c.Params("id"), reqData.CreatorID).First(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challenge not found or unauthorized!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("challenge_id = ?", challenge.ID).Delete(&models.ChallengeSubmission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&challenge).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenge deleted successfully!", nil)
}

// SubmitChallenge grades a wallet-signed answer set against the challenge
// questions and stores the submission. Nothing is recorded when the answer
// count does not match the question count.
func SubmitChallenge(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*challengeValidator.SubmitChallengeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var challenge models.Challenge
	if err := db.Where("id = ?", c.Params("id")).First(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challenge not found!", nil)
	}

	if len(reqData.Answers) != len(challenge.Questions) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid number of answers", nil)
	}

	if !utils.VerifySignature(reqData.ChallengerID, utils.SubmissionMessage(challenge.ID), reqData.Signature) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Signature verification failed!", nil)
	}

	score := 0
	for i, question := range challenge.Questions {
		if reqData.Answers[i] == question.CorrectOption {
			score++
		}
	}
	percentage := float64(score) / float64(len(challenge.Questions)) * 100

	submission := models.ChallengeSubmission{
		ChallengeID:  challenge.ID,
		ChallengerID: reqData.ChallengerID,
		Answers:      reqData.Answers,
		Score:        score,
		Percentage:   percentage,
		Signature:    reqData.Signature,
		SubmittedAt:  time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// One row per challenger; a re-submission replaces the old one
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "challenge_id"}, {Name: "challenger_id"}},
			UpdateAll: true,
		}).Create(&submission).Error
		if err != nil {
			return err
		}
		return tx.Model(&challenge).Update("completed", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenge submitted successfully!", fiber.Map{
		"score":          score,
		"percentage":     percentage,
		"totalQuestions": len(challenge.Questions),
		"correctAnswers": score,
	})
}
