package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-telegram/bot/models"
	"github.com/gofiber/fiber/v2"
	"github.com/vip102a/backend/internal/config"
)

// Webhook receives Bot API updates. Telegram requires a fast 200 regardless
// of content, so the update is acknowledged first and processed detached;
// failures past this point are logged, never surfaced.
func (h *Handler) Webhook(c *fiber.Ctx) error {
	var upd models.Update
	if err := json.Unmarshal(c.Body(), &upd); err != nil {
		slog.Warn("webhook: undecodable update", "error", err)
		return c.SendStatus(fiber.StatusOK)
	}

	h.background(func(ctx context.Context) {
		h.processUpdate(ctx, &upd)
	})

	return c.SendStatus(fiber.StatusOK)
}

func (h *Handler) processUpdate(ctx context.Context, upd *models.Update) {
	switch {
	case upd.PreCheckoutQuery != nil:
		h.handlePreCheckout(ctx, upd.PreCheckoutQuery)
	case upd.Message != nil && upd.Message.SuccessfulPayment != nil:
		h.handleSuccessfulPayment(ctx, upd.Message)
	}
}

// Pre-checkout is always accepted; there is no inventory or fraud check.
func (h *Handler) handlePreCheckout(ctx context.Context, q *models.PreCheckoutQuery) {
	if err := h.tg.AnswerPreCheckoutQuery(ctx, q.ID); err != nil {
		slog.Error("answer pre-checkout query", "error", err, "query_id", q.ID)
		return
	}
	slog.Info("pre-checkout accepted", "query_id", q.ID, "payload", q.InvoicePayload)
}

func (h *Handler) handleSuccessfulPayment(ctx context.Context, msg *models.Message) {
	payment := msg.SuccessfulPayment
	chatID := msg.Chat.ID

	slog.Info("payment received",
		"payload", payment.InvoicePayload,
		"stars", payment.TotalAmount,
		"charge_id", payment.TelegramPaymentChargeID,
		"chat_id", chatID,
	)

	if h.billing != nil {
		err := h.billing.RecordStarsPayment(ctx,
			payment.InvoicePayload,
			payment.TelegramPaymentChargeID,
			chatID,
			payment.TotalAmount,
		)
		if err != nil {
			slog.Error("record payment", "error", err, "payload", payment.InvoicePayload)
		}
	}

	if err := h.tg.SendMessage(ctx, chatID, config.PaymentSuccessMessage); err != nil {
		slog.Error("send payment confirmation", "error", err, "chat_id", chatID)
	}
}
