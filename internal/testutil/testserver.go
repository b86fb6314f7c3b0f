package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"insurance_backend/internal/app"
	"insurance_backend/internal/cache"
	"insurance_backend/internal/config"
	"insurance_backend/internal/services"
	"insurance_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const TestJWTSecret = "test-secret"

// TestServer is the full router over an in-memory database and a local
// object store in a temp dir.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Services *services.ServiceContainer
	Storage  *storage.LocalStorage
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = TestJWTSecret
	cfg.JWT.TTL = 60
	cfg.Storage.Type = storage.TypeLocal
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = services.GetDefaultUploadConfig().AllowedTypes
	cfg.Upload.AllowedExtensions = services.GetDefaultUploadConfig().AllowedExtensions
	cfg.Upload.Parallelism = 2
	cfg.Redis.TTL = time.Minute

	local, err := storage.NewLocalStorage(storage.Config{BasePath: cfg.Storage.BasePath, BaseURL: cfg.Storage.BaseURL})
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	router, container := app.SetupRouter(cfg, db, local, cache.NoopCache{})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       db,
		Services: container,
		Storage:  local,
	}
}

// SendRequest sends an optional JSON body and returns the response with its
// body already read.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Body        []byte
}

// SendMultipart posts files plus plain form fields.
func (ts *TestServer) SendMultipart(t *testing.T, path, token string, fields map[string]string, files ...Upload) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.Filename))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("failed to create form part: %v", err)
		}
		if _, err := part.Write(f.Body); err != nil {
			t.Fatalf("failed to write form part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// Login calls the login endpoint and returns the bearer token.
func (ts *TestServer) Login(t *testing.T, email, password, role string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login as %s failed with %d: %s", email, res.StatusCode, body)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return out.AccessToken
}
