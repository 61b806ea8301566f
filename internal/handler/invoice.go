package handler

import (
	"errors"
	"log/slog"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/vip102a/backend/internal/config"
	"github.com/vip102a/backend/internal/telegram"
)

// CreateInvoice validates the request and relays it to createInvoiceLink.
// One attempt, no retries.
func (h *Handler) CreateInvoice(c *fiber.Ctx) error {
	var req invoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	title := config.DefaultInvoiceTitle
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	description := config.DefaultInvoiceDescription
	if req.Description != nil && *req.Description != "" {
		description = *req.Description
	}

	priceStars := config.DefaultPriceStars
	if req.PriceStars != nil {
		v := *req.PriceStars
		// The upper bound keeps the float→int conversion in range
		if v != math.Trunc(v) || v <= 0 || v > math.MaxInt32 {
			return fail(c, fiber.StatusBadRequest, "price_stars must be a positive integer")
		}
		priceStars = int(v)
	}

	if req.Payload == nil || *req.Payload == "" {
		return fail(c, fiber.StatusBadRequest, "payload is required")
	}

	// Stars invoices take an empty provider token and the star count as the
	// price amount, unscaled.
	link, err := h.tg.CreateInvoiceLink(c.Context(), telegram.InvoiceLinkParams{
		Title:         title,
		Description:   description,
		Payload:       *req.Payload,
		ProviderToken: "",
		Currency:      config.StarsCurrency,
		Prices: []telegram.LabeledPrice{
			{Label: title, Amount: priceStars},
		},
	})
	if err != nil {
		var apiErr *telegram.APIError
		if errors.As(err, &apiErr) {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
				OK:          false,
				Error:       apiErr.Description,
				RawResponse: apiErr.Raw,
			})
		}
		slog.Error("create invoice link", "error", err)
		return fail(c, fiber.StatusInternalServerError, "failed to reach Telegram API")
	}

	return c.JSON(invoiceResponse{OK: true, InvoiceLink: link})
}
