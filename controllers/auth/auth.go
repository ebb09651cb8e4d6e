package controllers

import (
	"time"

	"onlynerds/config"
	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	"onlynerds/utils"
	authValidator "onlynerds/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// RequestNonce issues a fresh login nonce for a wallet address. The wallet
// proves ownership by signing it in the login call.
func RequestNonce(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNonce").(*authValidator.NonceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	nonce := models.AuthNonce{
		Address:   reqData.Address,
		Nonce:     utils.GenerateNonce(),
		ExpiresAt: time.Now().Add(time.Duration(config.AppConfig.NonceTTLMinutes) * time.Minute),
	}

	// One active nonce per address; a new request replaces the old nonce
	if err := database.Database.Db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&nonce).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate nonce!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nonce generated successfully!", fiber.Map{
		"nonce":   nonce.Nonce,
		"message": utils.LoginMessage(nonce.Nonce),
	})
}

// Login verifies the signed nonce, bootstraps the user on first login and
// returns a JWT for the wallet.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var nonce models.AuthNonce
	if err := db.Where("address = ?", reqData.Address).First(&nonce).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No login nonce found. Request a nonce first!", nil)
	}

	if time.Now().After(nonce.ExpiresAt) {
		db.Delete(&nonce)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Login nonce expired. Request a new one!", nil)
	}

	if !utils.VerifySignature(reqData.Address, utils.LoginMessage(nonce.Nonce), reqData.Signature) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Signature verification failed!", nil)
	}

	// Nonces are single use
	db.Delete(&nonce)

	var user models.User
	if err := db.Where("id = ?", reqData.Address).First(&user).Error; err != nil {
		user = models.User{
			ID:   reqData.Address,
			Name: "User_" + reqData.Address[:6],
		}
		if err := db.Create(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
