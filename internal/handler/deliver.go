package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/vip102a/backend/internal/service"
)

// Deliver issues a reward code for a paid invoice payload. Without
// REQUIRE_PAID_DELIVERY the code is issued unconditionally, matching the
// mini app's original contract.
func (h *Handler) Deliver(c *fiber.Ctx) error {
	var req deliverRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Payload == nil || *req.Payload == "" {
		return fail(c, fiber.StatusBadRequest, "payload is required")
	}
	payload := *req.Payload

	if h.cfg.RequirePaidDelivery {
		if h.billing == nil {
			// Gating without a ledger refuses everything rather than
			// failing open.
			return fail(c, fiber.StatusForbidden, "no completed payment for this payload")
		}
		paid, err := h.billing.HasCompletedPayment(c.Context(), payload)
		if err != nil {
			slog.Error("check payment record", "error", err, "payload", payload)
			return fail(c, fiber.StatusInternalServerError, "failed to check payment record")
		}
		if !paid {
			return fail(c, fiber.StatusForbidden, "no completed payment for this payload")
		}
	}

	code := service.NewRewardCode()
	slog.Info("reward issued", "payload", payload, "reward", code)

	return c.JSON(deliverResponse{OK: true, Reward: code})
}
