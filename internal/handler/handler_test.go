package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vip102a/backend/internal/config"
	"github.com/vip102a/backend/internal/telegram"
)

// upstreamRecorder fakes the Bot API and records every call it receives.
type upstreamRecorder struct {
	mu      sync.Mutex
	calls   []upstreamCall
	replies map[string]string // method -> response body
}

type upstreamCall struct {
	Method string
	Body   []byte
}

func (u *upstreamRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		method := path.Base(r.URL.Path)

		u.mu.Lock()
		u.calls = append(u.calls, upstreamCall{Method: method, Body: body})
		reply, ok := u.replies[method]
		u.mu.Unlock()

		if !ok {
			reply = `{"ok":true,"result":true}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}
}

func (u *upstreamRecorder) callsFor(method string) []upstreamCall {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []upstreamCall
	for _, c := range u.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (u *upstreamRecorder) total() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func (u *upstreamRecorder) reply(method, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.replies == nil {
		u.replies = map[string]string{}
	}
	u.replies[method] = body
}

// fakeBilling stands in for service.BillingService in handler tests.
type fakeBilling struct {
	mu       sync.Mutex
	recorded []recordedPayment
	paid     map[string]bool
	checkErr error
}

type recordedPayment struct {
	Payload  string
	ChargeID string
	ChatID   int64
	Stars    int
}

func (f *fakeBilling) RecordStarsPayment(ctx context.Context, payload, chargeID string, chatID int64, stars int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, recordedPayment{payload, chargeID, chatID, stars})
	return nil
}

func (f *fakeBilling) HasCompletedPayment(ctx context.Context, payload string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.paid[payload], nil
}

func (f *fakeBilling) payments() []recordedPayment {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedPayment, len(f.recorded))
	copy(out, f.recorded)
	return out
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func newTestApp(t *testing.T, upstreamURL string) (*fiber.App, *Handler) {
	t.Helper()
	return newTestAppDeps(t, upstreamURL, nil, nil)
}

func newTestAppDeps(t *testing.T, upstreamURL string, billing Billing, db Pinger) (*fiber.App, *Handler) {
	t.Helper()

	cfg := &config.Config{
		BotToken:        "test-token",
		TelegramAPIURL:  upstreamURL,
		TelegramTimeout: 2 * time.Second,
	}
	h := New(Deps{
		Cfg:     cfg,
		TG:      telegram.NewClient(cfg),
		Billing: billing,
		DB:      db,
	})
	app := fiber.New()
	h.Register(app)
	return app, h
}

func decodeBody(t *testing.T, r io.Reader, v any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func newUpstream(t *testing.T) (*upstreamRecorder, *httptest.Server) {
	t.Helper()
	rec := &upstreamRecorder{}
	srv := httptest.NewServer(rec.handler())
	t.Cleanup(srv.Close)
	return rec, srv
}
