package handler

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/vip102a/backend/internal/config"
	"github.com/vip102a/backend/internal/telegram"
)

// Billing records completed payments and answers membership queries for
// the delivery endpoint. Implemented by service.BillingService.
type Billing interface {
	RecordStarsPayment(ctx context.Context, payload, chargeID string, chatID int64, stars int) error
	HasCompletedPayment(ctx context.Context, payload string) (bool, error)
}

// Pinger reports storage connectivity for the health endpoint.
// Implemented by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds all dependencies needed by the HTTP handlers.
type Handler struct {
	cfg     *config.Config
	tg      *telegram.Client
	billing Billing // nil when DATABASE_URL is not set
	db      Pinger  // nil when DATABASE_URL is not set

	wg sync.WaitGroup // in-flight detached webhook work
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg     *config.Config
	TG      *telegram.Client
	Billing Billing
	DB      Pinger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:     deps.Cfg,
		tg:      deps.TG,
		billing: deps.Billing,
		db:      deps.DB,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Live)
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Post("/create-invoice", h.CreateInvoice)
	api.Post("/deliver", h.Deliver)

	app.Post("/webhook", h.Webhook)
}

// Drain waits for detached webhook work to finish. Called during shutdown.
func (h *Handler) Drain() {
	h.wg.Wait()
}

// background runs fn detached from the request that spawned it, with its own
// deadline. The inbound caller has already been answered at this point.
func (h *Handler) background(fn func(ctx context.Context)) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), config.WebhookProcessTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorResponse{OK: false, Error: msg})
}
