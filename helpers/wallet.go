package helpers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SeamlessWalletCode values come from the upstream wallet contract; the
// service only selects among them. Note the upstream reuses
// InternalServerError for validation failures.
type SeamlessWalletCode int

const (
	Success             SeamlessWalletCode = 200
	InternalServerError SeamlessWalletCode = 500
	MemberNotExist      SeamlessWalletCode = 1005
)

// WalletResponse writes the seamless-wallet envelope. The transport status
// is always 200; callers distinguish outcomes by the code field.
func WalletResponse(c *fiber.Ctx, code SeamlessWalletCode, message string, before, balance decimal.Decimal) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":           code,
		"message":        message,
		"before_balance": before.InexactFloat64(),
		"balance":        balance.InexactFloat64(),
	})
}
