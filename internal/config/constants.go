package config

import "time"

const (
	// Telegram Stars currency code
	StarsCurrency = "XTR"

	// Invoice defaults
	DefaultInvoiceTitle       = "Lucky Box"
	DefaultInvoiceDescription = "Buy a Lucky Box to receive a digital reward"
	DefaultPriceStars         = 50

	// Reward codes
	RewardCodePrefix = "LUCKY-"
	RewardCodeLength = 8

	// Message sent to the chat after a completed payment
	PaymentSuccessMessage = "Payment received! Your reward is waiting in the Mini App."

	// Telegram Stars conversion rate
	XTRToDollarRate = 0.013

	// Budget for the detached webhook work (up to two upstream calls)
	WebhookProcessTimeout = 30 * time.Second

	// Health check timeout
	HealthCheckTimeout = 5 * time.Second

	// Graceful shutdown timeout
	ShutdownTimeout = 10 * time.Second
)
