package gplus

import (
	"gplus/database"
	"gplus/helpers"
	"gplus/middlewares"
	"gplus/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type BalanceRequest struct {
	OperatorCode  string   `json:"operator_code"`
	RequestTime   *float64 `json:"request_time"`
	MemberAccount string   `json:"member_account"`
}

// BalanceHandler resolves a member and reports its current balance in the
// wallet envelope. POST /v1/api/seamless/balance
func BalanceHandler(c *fiber.Ctx) error {
	var req BalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.WalletResponse(c, helpers.InternalServerError, "Validation failed", decimal.Zero, decimal.Zero)
	}

	if req.OperatorCode == "" || req.MemberAccount == "" {
		return helpers.WalletResponse(c, helpers.InternalServerError, "Validation failed", decimal.Zero, decimal.Zero)
	}

	var user models.User
	if err := database.DB.Where("user_name = ? AND is_active = true", req.MemberAccount).First(&user).Error; err != nil {
		log.Warn().
			Str("request_id", middlewares.RequestID(c)).
			Str("member_account", req.MemberAccount).
			Msg("member not found for balance")
		return helpers.WalletResponse(c, helpers.MemberNotExist, "Member not found", decimal.Zero, decimal.Zero)
	}

	return helpers.WalletResponse(c, helpers.Success, "", user.Balance, user.Balance)
}
