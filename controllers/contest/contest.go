package controllers

import (
	"strconv"
	"strings"

	"onlynerds/middleware"
	"onlynerds/utils"

	"github.com/gofiber/fiber/v2"
)

// Contests live in an external EVM contract; the backend only proxies
// read calls so clients without an RPC connection can still render them.

// GetContestCount returns the number of contests created on-chain.
func GetContestCount(c *fiber.Ctx) error {
	count, err := utils.GetContestCount()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to read contest contract!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contest count fetched successfully!", fiber.Map{
		"count": count,
	})
}

// GetParticipation returns whether a wallet participated in a contest and
// its score when it did.
func GetParticipation(c *fiber.Ctx) error {
	contestID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Contest id must be a number!", nil)
	}

	address := strings.ToLower(c.Params("address"))
	if !utils.IsWalletAddress(address) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid wallet address is required!", nil)
	}

	participated, err := utils.HasParticipated(contestID, address)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to read contest contract!", nil)
	}

	var score uint64
	if participated {
		score, err = utils.GetParticipantScore(contestID, address)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to read contest contract!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participation fetched successfully!", fiber.Map{
		"contest_id":       contestID,
		"address":          address,
		"has_participated": participated,
		"score":            score,
	})
}
