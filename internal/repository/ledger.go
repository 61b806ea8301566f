package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vip102a/backend/internal/domain"
)

// Ledger is the append-only record of completed Stars payments.
type Ledger struct {
	pool *pgxpool.Pool
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

func (l *Ledger) Insert(ctx context.Context, p domain.Payment) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO payments (id, payload, telegram_charge_id, chat_id, amount_stars, amount_usd)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID.String(), p.Payload, p.ChargeID, p.ChatID, p.AmountStars, p.AmountUSD.String(),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// HasPayload reports whether any completed payment was recorded for payload.
func (l *Ledger) HasPayload(ctx context.Context, payload string) (bool, error) {
	var exists bool
	err := l.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE payload = $1)`,
		payload,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment: %w", err)
	}
	return exists, nil
}
