package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type stubProducer struct{}

func (stubProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	return nil
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	cfg, err := loadConfig("../.test.env")
	if err != nil {
		t.Fatalf("could not load test configuration: %v", err)
	}

	db := common.TestDB("file://../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:      cfg,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService: userservice.NewUserService(db, stubProducer{}, []byte(cfg.JWTSecret)),
		blogService: blogservice.NewBlogService(db, cache),
		metrics:     newMetricsCollector(),
	}

	return app, db
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &testServer{ts}
}

// do sends a request with an optional JSON body and bearer token and returns
// the status code and the raw response body. Empty bodies (404, 204) come
// back as empty byte slices.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("could not read response body: %v", err)
	}

	return res.StatusCode, data
}

func (ts *testServer) get(t *testing.T, path string) (int, []byte) {
	return ts.do(t, http.MethodGet, path, "", nil)
}

func (ts *testServer) post(t *testing.T, path, token string, body any) (int, []byte) {
	return ts.do(t, http.MethodPost, path, token, body)
}

func (ts *testServer) put(t *testing.T, path string, body any) (int, []byte) {
	return ts.do(t, http.MethodPut, path, "", body)
}

func (ts *testServer) delete(t *testing.T, path string) (int, []byte) {
	return ts.do(t, http.MethodDelete, path, "", nil)
}

func errorBody(t *testing.T, data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("could not unmarshal error body %q: %v", data, err)
	}
	return body.Error
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	var n int
	if err := db.QueryRow("SELECT count(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("could not count rows in %s: %v", table, err)
	}
	return n
}
