package gplus

import (
	"encoding/json"
	"errors"
	"time"

	"gplus/database"
	"gplus/helpers"
	"gplus/middlewares"
	"gplus/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PushBetTransaction struct {
	MemberAccount string                `json:"member_account"`
	WagerCode     string                `json:"wager_code"`
	ProductCode   models.FlexibleString `json:"product_code"`
	BetAmount     decimal.Decimal       `json:"bet_amount"`
	WagerType     string                `json:"wager_type"`
	WagerStatus   string                `json:"wager_status"`
	RoundID       models.FlexibleString `json:"round_id"`
	GameType      string                `json:"game_type"`
	ChannelCode   string                `json:"channel_code"`
	Currency      string                `json:"currency"`
	GameCode      models.FlexibleString `json:"game_code"`
	SettledAt     int64                 `json:"settled_at"` // epoch millis
	CreatedAt     int64                 `json:"created_at"` // epoch millis

	// Raw keeps the payload exactly as delivered, for the meta column.
	Raw json.RawMessage `json:"-"`
}

func (t *PushBetTransaction) UnmarshalJSON(data []byte) error {
	type plain PushBetTransaction
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = PushBetTransaction(p)
	t.Raw = append(json.RawMessage(nil), data...)
	return nil
}

type PushBetDataRequest struct {
	OperatorCode string               `json:"operator_code"`
	RequestTime  *float64             `json:"request_time"` // epoch seconds
	Sign         string               `json:"sign"`
	Transactions []PushBetTransaction `json:"transactions"`
}

// PushBetDataHandler ingests a batch of wager notifications pushed by the
// upstream wallet and upserts one ledger row per wager_code.
// POST /v1/api/seamless/pushbetdata
func PushBetDataHandler(c *fiber.Ctx) error {
	var req PushBetDataRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().
			Str("request_id", middlewares.RequestID(c)).
			Err(err).
			Msg("push bet data body parse failed")
		return helpers.WalletResponse(c, helpers.InternalServerError, "Validation failed", decimal.Zero, decimal.Zero)
	}

	log.Info().
		Str("request_id", middlewares.RequestID(c)).
		Str("operator_code", req.OperatorCode).
		Int("transactions", len(req.Transactions)).
		Msg("push bet data request")

	if req.OperatorCode == "" || req.RequestTime == nil || len(req.Transactions) == 0 {
		log.Warn().
			Str("request_id", middlewares.RequestID(c)).
			Str("operator_code", req.OperatorCode).
			Msg("push bet data validation failed")
		return helpers.WalletResponse(c, helpers.InternalServerError, "Validation failed", decimal.Zero, decimal.Zero)
	}

	requestTime := epochSeconds(int64(*req.RequestTime))

	for _, tx := range req.Transactions {
		if tx.MemberAccount == "" || tx.WagerCode == "" {
			log.Warn().
				Str("request_id", middlewares.RequestID(c)).
				Str("member_account", tx.MemberAccount).
				Str("wager_code", tx.WagerCode).
				Msg("missing member_account or wager_code, skipping transaction")
			continue
		}

		var user models.User
		if err := database.DB.Where("user_name = ?", tx.MemberAccount).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn().
					Str("request_id", middlewares.RequestID(c)).
					Str("member_account", tx.MemberAccount).
					Msg("member not found for push bet data")
				return helpers.WalletResponse(c, helpers.MemberNotExist, "Member not found", decimal.Zero, decimal.Zero)
			}
			return err
		}

		var existing *models.PushBet
		var found models.PushBet
		err := database.DB.Where("transaction_id = ?", tx.WagerCode).First(&found).Error
		switch {
		case err == nil:
			existing = &found
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = nil
		default:
			return err
		}

		row := mergePushBet(req.OperatorCode, requestTime, tx, existing)
		if existing != nil {
			if err := database.DB.Model(&found).Updates(pushBetColumns(row)).Error; err != nil {
				return err
			}
		} else {
			if err := database.DB.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	return helpers.WalletResponse(c, helpers.Success, "", decimal.Zero, decimal.Zero)
}

// mergePushBet builds the ledger row for one incoming transaction. When an
// existing row is given, a non-empty incoming field wins and an empty one
// keeps the stored value; meta, member_account and operator_code are always
// overwritten. With no existing row, absent fields fall back to zero values.
func mergePushBet(operatorCode string, requestTime *time.Time, tx PushBetTransaction, existing *models.PushBet) models.PushBet {
	row := models.PushBet{
		TransactionID: tx.WagerCode,
		MemberAccount: tx.MemberAccount,
		OperatorCode:  operatorCode,
		Meta:          append([]byte(nil), tx.Raw...),
	}
	if existing != nil {
		row.ProductCode = existing.ProductCode
		row.Amount = existing.Amount
		row.Action = existing.Action
		row.Status = existing.Status
		row.WagerStatus = existing.WagerStatus
		row.RoundID = existing.RoundID
		row.GameType = existing.GameType
		row.ChannelCode = existing.ChannelCode
		row.Currency = existing.Currency
		row.GameCode = existing.GameCode
		row.RequestTime = existing.RequestTime
		row.SettleAt = existing.SettleAt
		row.CreatedAtProvider = existing.CreatedAtProvider
	}

	if code, err := tx.ProductCode.ToInt64(); err == nil && tx.ProductCode != "" {
		row.ProductCode = int(code)
	}
	if !tx.BetAmount.IsZero() {
		row.Amount = tx.BetAmount
	}
	if tx.WagerType != "" {
		row.Action = tx.WagerType
	}
	if tx.WagerStatus != "" {
		row.Status = tx.WagerStatus
		row.WagerStatus = tx.WagerStatus
	}
	if tx.RoundID != "" {
		row.RoundID = tx.RoundID.String()
	}
	if tx.GameType != "" {
		row.GameType = tx.GameType
	}
	if tx.ChannelCode != "" {
		row.ChannelCode = tx.ChannelCode
	}
	if tx.Currency != "" {
		row.Currency = tx.Currency
	}
	if tx.GameCode != "" {
		row.GameCode = tx.GameCode.String()
	}

	if requestTime != nil {
		row.RequestTime = requestTime
	}
	// Provider timestamps arrive in milliseconds.
	if t := epochSeconds(tx.SettledAt / 1000); t != nil {
		row.SettleAt = t
	}
	if t := epochSeconds(tx.CreatedAt / 1000); t != nil {
		row.CreatedAtProvider = t
	}

	return row
}

// pushBetColumns maps every mutable column explicitly so that merged empty
// strings and zero amounts still land in the UPDATE statement.
func pushBetColumns(row models.PushBet) map[string]any {
	return map[string]any{
		"member_account":      row.MemberAccount,
		"product_code":        row.ProductCode,
		"amount":              row.Amount,
		"action":              row.Action,
		"status":              row.Status,
		"wager_status":        row.WagerStatus,
		"round_id":            row.RoundID,
		"game_type":           row.GameType,
		"channel_code":        row.ChannelCode,
		"operator_code":       row.OperatorCode,
		"currency":            row.Currency,
		"game_code":           row.GameCode,
		"meta":                row.Meta,
		"request_time":        row.RequestTime,
		"settle_at":           row.SettleAt,
		"created_at_provider": row.CreatedAtProvider,
	}
}

func epochSeconds(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
