package repository_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-event-discovery/config"
	"go-gin-event-discovery/internal/repository"
)

const testToken = "test-token"

// newTestClient 啟動假的後端並回傳指向它的 Client
func newTestClient(t *testing.T, mux *http.ServeMux) *repository.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return repository.NewClient(config.APIConfig{
		BaseURL: server.URL + "/api/",
		Token:   testToken,
		Timeout: time.Second,
	})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
