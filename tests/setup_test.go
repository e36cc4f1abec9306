package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/config"
	"github.com/avikm/job-board/internal/realtime"
	"github.com/avikm/job-board/internal/repositories"
	"github.com/avikm/job-board/internal/server"
	"github.com/avikm/job-board/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	server     *httptest.Server
	bus        EventBus.Bus
	tokens     *auth.TokenService
	uploadsDir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbCtx, err := repositories.NewDbContext(":memory:")
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })

	employers := repositories.NewEmployersRepository(dbCtx.DB)
	admins := repositories.NewAdminsRepository(dbCtx.DB)
	jobs := repositories.NewJobsRepository(dbCtx.DB)
	applications := repositories.NewApplicationsRepository(dbCtx.DB)
	publicJobs := repositories.NewCachedPublicJobs(jobs)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	bus := EventBus.New()

	hub, err := realtime.NewHub(bus, tokens, "*")
	require.NoError(t, err)
	t.Cleanup(hub.Close)

	accountsService := services.NewAccountsService(employers, admins, tokens)
	jobsService := services.NewJobsService(jobs, applications, publicJobs, employers)
	applicationsService, err := services.NewApplicationsService(bus, jobs, applications)
	require.NoError(t, err)

	uploadsDir := t.TempDir()
	srv, err := server.New(
		config.ServerConfig{Port: 0, MetricsPort: 0, AllowedOrigin: "*"},
		config.UploadsConfig{Dir: uploadsDir, MaxSizeBytes: 1 << 20},
		tokens, accountsService, jobsService, applicationsService, hub,
	)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testApp{server: ts, bus: bus, tokens: tokens, uploadsDir: uploadsDir}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`

	Jobs         []map[string]any `json:"jobs"`
	Job          map[string]any   `json:"job"`
	Applications []map[string]any `json:"applications"`
	Application  map[string]any   `json:"application"`
	Employer     map[string]any   `json:"employer"`
	Admin        map[string]any   `json:"admin"`
}

func (a *testApp) request(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// applyMultipart submits an application with a resume attachment.
func (a *testApp) applyMultipart(t *testing.T, jobID uint, fields map[string]string, resume string) (int, envelope) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	part, err := writer.CreateFormFile("resume", resume)
	require.NoError(t, err)
	_, err = part.Write([]byte("resume body"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("%s/api/jobs/%d/apply", a.server.URL, jobID), &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (a *testApp) registerEmployer(t *testing.T, phone, email string) string {
	t.Helper()

	status, resp := a.request(t, http.MethodPost, "/api/employer/register", "", map[string]any{
		"companyName": "Acme",
		"ownerName":   "Wile E.",
		"phone":       phone,
		"email":       email,
		"password":    "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (a *testApp) signupAdmin(t *testing.T) string {
	t.Helper()

	status, resp := a.request(t, http.MethodPost, "/api/admin/signup", "", map[string]any{
		"name":     "Root",
		"email":    "root@board.test",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (a *testApp) createJob(t *testing.T, employerToken string) uint {
	t.Helper()

	status, resp := a.request(t, http.MethodPost, "/api/jobs", employerToken, map[string]any{
		"jobTitle": "Tester",
		"workMode": "Full Time",
		"location": "Pune",
	})
	require.Equal(t, http.StatusOK, status)
	return uint(resp.Job["id"].(float64))
}

func (a *testApp) acceptJob(t *testing.T, adminToken string, jobID uint) {
	t.Helper()

	status, _ := a.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/jobs/%d/status", jobID), adminToken,
		map[string]any{"status": "Accepted"})
	require.Equal(t, http.StatusOK, status)
}

// applyForm posts an urlencoded application; resume uploads are covered by
// the handler tests, here plain form fields are enough.
func (a *testApp) applyForm(t *testing.T, jobID uint, fields map[string]string) (int, envelope) {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("%s/api/jobs/%d/apply", a.server.URL, jobID),
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}
