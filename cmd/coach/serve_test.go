package main

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/handlers"
	"alfredoptarigan/interview-coach/internal/llm/llmtest"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

func newTestApp(t *testing.T, client *llmtest.FakeClient) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test", ReadTimeout: time.Second, WriteTimeout: time.Second},
		Storage: config.StorageConfig{UploadPath: t.TempDir(), MaxFileSize: 1 << 20},
	}
	coach := services.NewCoachService(client)
	storage := services.NewStorageService(cfg.Storage.UploadPath, services.SupportedDocumentExtensions)

	return newApp(cfg,
		handlers.NewCoachHandler(coach),
		handlers.NewUploadHandler(coach, storage, services.NewDocumentParserService(), cfg.Storage.MaxFileSize),
	)
}

func TestApp_RequestIDIsEchoed(t *testing.T) {
	app := newTestApp(t, llmtest.NewFakeClient(`{}`))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(fiber.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestApp_RootListsOperations(t *testing.T) {
	app := newTestApp(t, llmtest.NewFakeClient(`{}`))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Operations []models.Operation `json:"operations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.Operations, body.Operations)
}

func TestApp_UnknownRouteUsesErrorBody(t *testing.T) {
	app := newTestApp(t, llmtest.NewFakeClient(`{}`))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/resume", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, handlers.KindNotFound, errResp.Kind)
}

func TestApp_FeedbackEndToEnd(t *testing.T) {
	client := llmtest.NewFakeClient(`{"feedback":"f","improvementPlan":"p","cheatSheet":"c"}`)
	app := newTestApp(t, client)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/feedback",
		strings.NewReader(`{"company":"Acme","round":"Phone Screen","rejectionReason":"Weak algorithms"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, client.CallCount())
}
