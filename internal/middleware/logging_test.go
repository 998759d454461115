package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedApp(t *testing.T) (*fiber.App, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	mw := New(logger)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Use(mw.NewLoggingMiddleware())

	app.Post("/chat", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/bad", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusBadRequest)
	})
	app.Post("/broken", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	return app, hook
}

func send(t *testing.T, app *fiber.App, path, body string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(RequestIDKey, "req-42")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
}

func TestLoggingMiddleware_RecordsRequestFields(t *testing.T) {
	app, hook := newLoggedApp(t)

	send(t, app, "/chat", `{"message":"hola"}`)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Success", entry.Message)
	assert.Equal(t, "req-42", entry.Data["request_id"])
	assert.Equal(t, fiber.MethodPost, entry.Data["method"])
	assert.Equal(t, "/chat", entry.Data["path"])
	assert.Equal(t, fiber.StatusOK, entry.Data["status"])
	assert.Contains(t, entry.Data, "latency_ms")
	assert.Equal(t, "hola", entry.Data["request_body"])
}

func TestLoggingMiddleware_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		path    string
		status  int
		level   logrus.Level
		message string
	}{
		{path: "/bad", status: fiber.StatusBadRequest, level: logrus.WarnLevel, message: "Client error"},
		{path: "/broken", status: fiber.StatusInternalServerError, level: logrus.ErrorLevel, message: "Server error"},
		{path: "/nowhere", status: fiber.StatusNotFound, level: logrus.WarnLevel, message: "Client error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app, hook := newLoggedApp(t)

			send(t, app, tt.path, `{"message":"x"}`)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, tt.status, entry.Data["status"])
		})
	}
}

func TestSummarizeRequestBody(t *testing.T) {
	long := strings.Repeat("ñ", 200)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "short message", body: `{"message":"hello"}`, want: "hello"},
		{name: "long message is cut", body: `{"message":"` + long + `"}`, want: strings.Repeat("ñ", maxLoggedMessage) + "..."},
		{name: "exactly at the limit", body: `{"message":"` + strings.Repeat("a", maxLoggedMessage) + `"}`, want: strings.Repeat("a", maxLoggedMessage)},
		{name: "non JSON", body: `hello`, want: "[non-JSON body]"},
		{name: "message is not a string", body: `{"message":5}`, want: "[no message]"},
		{name: "message missing", body: `{"text":"hi"}`, want: "[no message]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarizeRequestBody([]byte(tt.body)))
		})
	}
}
