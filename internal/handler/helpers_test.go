package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/social-media-api/internal/handler"
	"github.com/msomdec/social-media-api/internal/repository/sqlite"
	"github.com/msomdec/social-media-api/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWithLimiter(t, service.NewLoginLimiter(100, 100))
}

func newTestServerWithLimiter(t *testing.T, limiter *service.LoginLimiter) *httptest.Server {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	accounts := service.NewAccountService(db.Accounts(), nil)
	messages := service.NewMessageService(db.Messages(), accounts, nil)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, accounts, messages, limiter)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return srv
}

// do sends a JSON request and returns the status code and raw body.
func do(t *testing.T, method, url string, body any) (int, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	return v
}

func registerAccount(t *testing.T, baseURL, username, password string) handler.AccountDTO {
	t.Helper()
	status, body := do(t, http.MethodPost, baseURL+"/register", map[string]string{
		"username": username,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d (%s)", username, status, body)
	}
	return decode[handler.AccountDTO](t, body)
}
