package config

import (
	"ChatbotGolang/internal/artifact"
	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/internal/model"
	"ChatbotGolang/pkg/nlp"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *catalog.Catalog) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env := Env{AppEnv: "test", CorsAllowOrigins: "*", MaxMessageLength: 2000, ArtifactDir: t.TempDir()}
	v := NewValidator()

	c, err := catalog.Load(filepath.Join("..", "..", "intents.json"), v)
	require.NoError(t, err)

	store, closeStore, err := NewArtifactStore(context.Background(), env, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeStore() })

	mc, state, err := model.NewBootstrapper(logger, store, c, nlp.LanguageAuto).Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.StateCold, state)

	srv, err := NewServer(
		WithFiber(NewFiber(logger, env)),
		WithLogger(logger),
		WithValidator(v),
		WithEnv(env),
		WithMiddleware(),
		WithCatalog(c),
		WithModel(mc),
	)
	require.NoError(t, err)
	srv.RegisterHandler()

	return srv, c
}

func TestServer_ChatRoundTrip(t *testing.T) {
	srv, c := newTestServer(t)

	req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(`{"message":"Hola"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderOrigin, "http://example.com")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	var body struct {
		Response string `json:"response"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, jsoniter.Unmarshal(raw, &body))

	greeting, ok := c.Lookup("saludo")
	require.True(t, ok)
	assert.Contains(t, greeting.Responses, body.Response)
}

func TestServer_OnlyChatRouteIsServed(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := srv.App().Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNewServer_RequiresModel(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	_, err := NewServer(WithFiber(fiber.New()), WithLogger(logger))
	require.Error(t, err)
}

func TestNewArtifactStore(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, closeStore, err := NewArtifactStore(context.Background(), Env{ArtifactStore: "file", ArtifactDir: t.TempDir()}, logger)
	require.NoError(t, err)
	require.NoError(t, closeStore())
	assert.IsType(t, &artifact.FileStore{}, store)

	_, closeStore, err = NewArtifactStore(context.Background(), Env{ArtifactStore: "ftp"}, logger)
	require.Error(t, err)
	require.NotNil(t, closeStore)
}
