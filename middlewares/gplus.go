package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"gplus/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// GplusAuth guards the seamless wallet group. The operator code must match
// the configured one, and when GPLUS_SECRET_KEY is set the request must
// carry sign = hex(hmac-sha256(operator_code + request_time, secret)).
// Rejections use the wallet envelope so the upstream always sees HTTP 200.
func GplusAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("request_id", uuid.New().String())

		var body struct {
			OperatorCode string      `json:"operator_code"`
			RequestTime  json.Number `json:"request_time"`
			Sign         string      `json:"sign"`
		}

		if err := c.BodyParser(&body); err != nil {
			return helpers.WalletResponse(c, helpers.InternalServerError, "Validation failed", decimal.Zero, decimal.Zero)
		}

		expectedOperator := os.Getenv("GPLUS_OPERATOR_CODE")
		if expectedOperator != "" && body.OperatorCode != expectedOperator {
			log.Warn().
				Str("request_id", RequestID(c)).
				Str("operator_code", body.OperatorCode).
				Msg("unknown operator code")
			return helpers.WalletResponse(c, helpers.InternalServerError, "Invalid operator", decimal.Zero, decimal.Zero)
		}

		secret := os.Getenv("GPLUS_SECRET_KEY")
		if secret != "" {
			h := hmac.New(sha256.New, []byte(secret))
			h.Write([]byte(body.OperatorCode + body.RequestTime.String()))
			expectedSign := hex.EncodeToString(h.Sum(nil))

			if !hmac.Equal([]byte(expectedSign), []byte(strings.ToLower(body.Sign))) {
				log.Warn().
					Str("request_id", RequestID(c)).
					Str("operator_code", body.OperatorCode).
					Msg("invalid request signature")
				return helpers.WalletResponse(c, helpers.InternalServerError, "Invalid signature", decimal.Zero, decimal.Zero)
			}
		}

		return c.Next()
	}
}

// RequestID returns the correlation id stamped by GplusAuth.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("request_id").(string); ok {
		return id
	}
	return ""
}
