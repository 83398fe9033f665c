package admin

import (
	"strconv"

	"gplus/database"
	"gplus/helpers"
	"gplus/models"

	"github.com/gofiber/fiber/v2"
)

// ListPushBets serves the operator read API over the push-bet ledger.
// GET /admin/pushbets?member_account=&status=&page=&per_page=
func ListPushBets(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "50"))
	if perPage < 1 {
		perPage = 50
	}
	if perPage > 200 {
		perPage = 200
	}

	query := database.DB.Model(&models.PushBet{})
	if member := c.Query("member_account"); member != "" {
		query = query.Where("member_account = ?", member)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_COUNT_PUSHBETS")
	}

	var bets []models.PushBet
	if err := query.Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&bets).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_PUSHBETS")
	}

	return helpers.JSONSuccess(c, "Push bets retrieved successfully", fiber.Map{
		"total":    total,
		"page":     page,
		"per_page": perPage,
		"pushbets": bets,
	})
}
