package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	UserName     string          `gorm:"uniqueIndex;size:64" json:"user_name"`
	OperatorCode string          `gorm:"index;size:32" json:"operator_code"`
	Balance      decimal.Decimal `gorm:"type:numeric(18,2);default:0" json:"balance"`
	Currency     string          `gorm:"size:8" json:"currency"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
}
