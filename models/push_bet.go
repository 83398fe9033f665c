package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PushBet is the local ledger row for one wager pushed by the upstream
// wallet provider. TransactionID is the wager_code from the provider and
// must stay unique: repeat deliveries update the existing row.
type PushBet struct {
	gorm.Model

	TransactionID string `gorm:"size:64;uniqueIndex" json:"transaction_id"`
	MemberAccount string `gorm:"size:64;index" json:"member_account"`

	ProductCode int             `gorm:"default:0" json:"product_code"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);default:0" json:"amount"`
	Action      string          `gorm:"size:32" json:"action"`
	Status      string          `gorm:"size:32;index" json:"status"`
	WagerStatus string          `gorm:"size:32" json:"wager_status"`
	RoundID     string          `gorm:"size:64" json:"round_id"`
	GameType    string          `gorm:"size:32" json:"game_type"`
	ChannelCode string          `gorm:"size:32" json:"channel_code"`

	OperatorCode string `gorm:"size:32;index" json:"operator_code"`
	Currency     string `gorm:"size:8" json:"currency"`
	GameCode     string `gorm:"size:64" json:"game_code"`

	// Full raw transaction as delivered, kept for audit and replay debugging.
	Meta datatypes.JSON `gorm:"type:jsonb" json:"meta"`

	RequestTime       *time.Time `json:"request_time"`
	SettleAt          *time.Time `json:"settle_at"`
	CreatedAtProvider *time.Time `json:"created_at_provider"`
}
