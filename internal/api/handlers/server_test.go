package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"a11ysentinel.io/sentinel/internal/aiqueue"
	"a11ysentinel.io/sentinel/internal/api/middleware"
	"a11ysentinel.io/sentinel/internal/audit"
	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/config"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/lifecycle"
	"a11ysentinel.io/sentinel/internal/orchestrator"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
	"a11ysentinel.io/sentinel/internal/report"
	"a11ysentinel.io/sentinel/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "console")
}

type apiHarness struct {
	router *gin.Engine
	server *Server
	token  string
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	client, pool := testutil.OpenEntWithPool(t, "handlers")
	riverClient := testutil.OpenRiverClient(t, pool)
	events := domain.NewEventDispatcher()

	cc := campaign.NewController(client, pool, events)
	require.NoError(t, cc.Ensure(t.Context(), campaign.SeedConfig{
		Name:        "Test Campaign",
		TokenBudget: 1_000_000,
		StartsAt:    time.Now().Add(-time.Hour),
		EndsAt:      time.Now().Add(24 * time.Hour),
	}))

	qp := aiqueue.NewProcessor(client, pool, cc, events, aiqueue.Config{EstimatedTokensPerScan: 12_000})
	lm := lifecycle.NewManager(client, pool, riverClient, cc, qp, events, lifecycle.Config{
		MaxBatchURLs:           50,
		EstimatedTokensPerScan: 12_000,
	})
	qp.SetLifecycle(lm)

	orch := orchestrator.New(lm, cc, qp,
		report.NewGenerator(client, config.ReportConfig{}),
		audit.NewLogger(client), nil)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte("handlers-test-key-123456789012345"),
		Issuer:     "sentinel",
		ExpiresIn:  time.Hour,
	}
	srv := NewServer(ServerDeps{
		EntClient:    client,
		Pool:         pool,
		JWTCfg:       jwtCfg,
		Orchestrator: orch,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = client.User.Create().
		SetID("user-admin").
		SetUsername("admin").
		SetPasswordHash(string(hash)).
		SetPermissions(append(middleware.AllPermissions(), middleware.PermPlatformAdmin)).
		Save(t.Context())
	require.NoError(t, err)

	token, _, err := middleware.GenerateToken(jwtCfg, "user-admin", "admin", []string{middleware.PermPlatformAdmin})
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", srv.Login)
	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(jwtCfg.SigningKey))
	{
		authed.POST("/batches", srv.CreateBatch)
		authed.GET("/batches", srv.ListBatches)
		authed.GET("/batches/:batchId", srv.GetBatch)
		authed.GET("/batches/:batchId/metrics", srv.GetBatchMetrics)
		authed.POST("/batches/:batchId/cancel", srv.CancelBatch)
		authed.POST("/batches/:batchId/retry", srv.RetryFailedScans)
		authed.DELETE("/batches/:batchId", srv.DeleteBatch)
		authed.GET("/batches/:batchId/export", srv.ExportBatch)
		authed.POST("/scans", srv.CreateScan)
		authed.GET("/campaign", srv.GetCampaignStatus)
		authed.POST("/campaign/pause", srv.PauseCampaign)
		authed.POST("/campaign/resume", srv.ResumeCampaign)
		authed.GET("/ai-queue", srv.ListAiQueue)
		authed.GET("/ai-queue/stats", srv.GetQueueStats)
		authed.GET("/ai-queue/export", srv.ExportAiQueue)
		authed.POST("/ai-queue/import", srv.ImportAiQueue)
		authed.POST("/ai-queue/:scanId/retry", srv.RetryAiScan)
	}
	v1.GET("/campaign/metrics", srv.GetCampaignMetrics)
	router.GET("/healthz", srv.GetHealth)
	router.GET("/openapi.yaml", srv.GetOpenAPISpec)

	return &apiHarness{router: router, server: srv, token: token}
}

func (h *apiHarness) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	h := newAPIHarness(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	h.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	h.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_FAILED", decodeBody(t, w)["code"])
}

func TestCreateBatch_FullFlow(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/batches", gin.H{
		"homepage_url": "https://example.com",
		"urls":         []string{"https://example.com/", "https://example.com/about"},
		"wcag_level":   "AA",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	batchID, _ := body["batch_id"].(string)
	require.NotEmpty(t, batchID)

	w = h.do(t, http.MethodGet, "/api/v1/batches/"+batchID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	scans, ok := detail["scans"].([]interface{})
	require.True(t, ok)
	assert.Len(t, scans, 2)

	w = h.do(t, http.MethodGet, "/api/v1/batches/"+batchID+"/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeBody(t, w)["total_urls"])

	w = h.do(t, http.MethodGet, "/api/v1/batches?status=PENDING", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["total"])

	w = h.do(t, http.MethodGet, "/api/v1/batches/"+batchID+"/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	w = h.do(t, http.MethodPost, "/api/v1/batches/"+batchID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/batches/"+batchID+"/cancel", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_STATE", decodeBody(t, w)["code"])

	w = h.do(t, http.MethodDelete, "/api/v1/batches/"+batchID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/batches/"+batchID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBatch_ValidationErrors(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/batches", gin.H{
		"homepage_url": "https://example.com",
		"urls":         []string{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMPTY_URL_SET", decodeBody(t, w)["code"])

	urls := make([]string, 51)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://example.com/page-%d", i)
	}
	w = h.do(t, http.MethodPost, "/api/v1/batches", gin.H{
		"homepage_url": "https://example.com",
		"urls":         urls,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "TOO_MANY_URLS", decodeBody(t, w)["code"])
}

func TestCreateScan_Standalone(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/scans", gin.H{
		"url":        "https://example.com/landing",
		"ai_enabled": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["scan_id"])
	assert.Equal(t, true, body["ai_admitted"])
}

func TestCampaignEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/campaign", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)
	assert.Equal(t, "ACTIVE", status["status"])
	assert.EqualValues(t, 1_000_000, status["total_token_budget"])

	// Public metrics carry no absolute token numbers.
	w = h.do(t, http.MethodGet, "/api/v1/campaign/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "total_token_budget")

	w = h.do(t, http.MethodPost, "/api/v1/campaign/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/campaign/pause", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/campaign/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAiQueueEndpoints(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/ai-queue/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/ai-queue/export", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_PENDING_ENTRIES", decodeBody(t, w)["code"])

	// An AI batch puts entries on the queue; export then claims them.
	w = h.do(t, http.MethodPost, "/api/v1/batches", gin.H{
		"homepage_url": "https://example.com",
		"urls":         []string{"https://example.com/"},
		"ai_enabled":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = h.do(t, http.MethodGet, "/api/v1/ai-queue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, ok := decodeBody(t, w)["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	scanID := entry["scan_id"].(string)

	w = h.do(t, http.MethodGet, "/api/v1/ai-queue/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), scanID)

	// Round-trip the claimed scan through a results upload.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "results.csv")
	require.NoError(t, err)
	fmt.Fprintf(part, "scan_id,status,input_tokens,output_tokens,model,processing_ms\n")
	fmt.Fprintf(part, "%s,COMPLETED,4000,1200,claude-sonnet,900\n", scanID)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-queue/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+h.token)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	summary := decodeBody(t, rec)
	assert.EqualValues(t, 1, summary["processed"])
	assert.EqualValues(t, 0, summary["failed"])

	w = h.do(t, http.MethodPost, "/api/v1/ai-queue/"+scanID+"/retry", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestGetOpenAPISpec(t *testing.T) {
	h := newAPIHarness(t)

	w := h.do(t, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/yaml")
	assert.Contains(t, w.Body.String(), "openapi:")
}
