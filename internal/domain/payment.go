package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is one completed Telegram Stars charge, as reported by the
// successful_payment webhook. Rows are append-only.
type Payment struct {
	ID          uuid.UUID
	Payload     string
	ChargeID    string
	ChatID      int64
	AmountStars int
	AmountUSD   decimal.Decimal
	CreatedAt   time.Time
}
