package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vip102a/backend/internal/config"
	"github.com/vip102a/backend/internal/domain"
	"github.com/vip102a/backend/internal/repository"
)

// BillingService records completed Stars payments and answers membership
// queries for the delivery endpoint.
type BillingService struct {
	ledger *repository.Ledger
}

func NewBillingService(ledger *repository.Ledger) *BillingService {
	return &BillingService{ledger: ledger}
}

func (s *BillingService) RecordStarsPayment(ctx context.Context, payload, chargeID string, chatID int64, stars int) error {
	return s.ledger.Insert(ctx, domain.Payment{
		ID:          uuid.New(),
		Payload:     payload,
		ChargeID:    chargeID,
		ChatID:      chatID,
		AmountStars: stars,
		AmountUSD:   StarsToUSD(stars),
	})
}

func (s *BillingService) HasCompletedPayment(ctx context.Context, payload string) (bool, error) {
	return s.ledger.HasPayload(ctx, payload)
}

// StarsToUSD converts a Telegram Stars amount to its USD valuation.
func StarsToUSD(stars int) decimal.Decimal {
	return decimal.NewFromInt(int64(stars)).Mul(decimal.NewFromFloat(config.XTRToDollarRate))
}
