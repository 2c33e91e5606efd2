package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"sync"
	"testing"

	"artizia_backend/database"
	"artizia_backend/internal/app"
	"artizia_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

var configOnce sync.Once

// testConfig installs a fixed test configuration into the global config.
// Storage writes go to a throwaway directory under the OS temp dir.
func testConfig() {
	configOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		uploadDir, err := os.MkdirTemp("", "artizia-test-uploads-")
		if err != nil {
			panic(fmt.Sprintf("failed to create upload dir: %v", err))
		}

		cfg := &config.Config{}
		cfg.Server.Host = "127.0.0.1"
		cfg.Server.Port = 4001
		cfg.Server.Env = "test"
		cfg.JWT.Secret = "test-secret-do-not-use-in-production"
		cfg.JWT.TTL = 60
		cfg.CORS.AllowedOrigins = []string{"*"}
		cfg.Storage.Type = "local"
		cfg.Storage.BasePath = uploadDir
		cfg.Upload.MaxSize = 2 * 1024 * 1024
		cfg.Upload.MaxImages = 5
		cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
		config.AppConfig = cfg
	})
}

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the full router against a fresh in-memory sqlite
// database. Each call gets its own database, so tests can run in parallel.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	testConfig()

	// A named shared-cache DSN keeps the database alive across the pool's
	// connections; a single connection avoids sqlite write lock errors.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := app.SeedRoles(db); err != nil {
		t.Fatalf("failed to seed roles: %v", err)
	}

	router := app.SetupRouter(config.AppConfig, db)
	server := httptest.NewServer(router)

	ts := &TestServer{Server: server, DB: db}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest performs a JSON request against the test server and returns the
// response together with its body.
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
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}

// UploadFile describes one file part of a multipart request.
type UploadFile struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// SendMultipart performs a multipart/form-data request with the given fields
// and files.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files []UploadFile) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		header.Set("Content-Type", f.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create form file %s: %v", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("failed to write form file %s: %v", f.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to finalize multipart body: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
