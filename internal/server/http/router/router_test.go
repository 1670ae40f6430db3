package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/toymix/internal/domain/model"
	pkgAuth "github.com/polkiloo/toymix/internal/pkg/auth"
	"github.com/polkiloo/toymix/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/toymix/internal/test"
)

func newTestEngine(facade testhelpers.StoreFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger)
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestEngine(testhelpers.StoreFacadeStub{})

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "123456"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	routes := []struct {
		method, path string
		body         string
		want         int
	}{
		{http.MethodGet, "/clientes", "", http.StatusOK},
		{http.MethodGet, "/clientes/1", "", http.StatusOK},
		{http.MethodPost, "/clientes", `{"nome":"Ana","email":"ana@example.com","nascimento":"1992-05-01"}`, http.StatusCreated},
		{http.MethodPut, "/clientes/1", `{"nome":"Ana Maria"}`, http.StatusOK},
		{http.MethodDelete, "/clientes/1", "", http.StatusNoContent},
		{http.MethodGet, "/sales", "", http.StatusOK},
		{http.MethodPost, "/sales", `{"cliente_id":1,"data":"2024-01-01","valor":150}`, http.StatusCreated},
		{http.MethodPut, "/sales/1", `{"valor":"99.90"}`, http.StatusOK},
		{http.MethodDelete, "/sales/1", "", http.StatusNoContent},
		{http.MethodGet, "/stats/daily-sales", "", http.StatusOK},
		{http.MethodGet, "/stats/top-clients", "", http.StatusOK},
		{http.MethodGet, "/stats/summary", "", http.StatusOK},
	}
	for _, r := range routes {
		req := httptest.NewRequest(r.method, r.path, bytes.NewReader([]byte(r.body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != r.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", r.method, r.path, r.want, resp.Code, resp.Body.String())
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	mutated := false
	facade := testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: func(string) (*pkgAuth.Claims, error) {
			return nil, pkgAuth.ErrInvalidToken
		}},
		CustomerFacadeStub: testhelpers.CustomerFacadeStub{DeleteFn: func(context.Context, int64) error {
			mutated = true
			return nil
		}},
	}
	engine := newTestEngine(facade)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/clientes"},
		{http.MethodDelete, "/clientes/1"},
		{http.MethodPost, "/sales"},
		{http.MethodGet, "/stats/summary"},
	}
	for _, p := range paths {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(p.method, p.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", p.method, p.path, resp.Code)
		}

		req := httptest.NewRequest(p.method, p.path, nil)
		req.Header.Set("Authorization", "Bearer expired")
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s with bad token: expected 401, got %d", p.method, p.path, resp.Code)
		}
	}
	if mutated {
		t.Fatal("unauthenticated request reached the facade")
	}
}

func TestResponsesAreCompressedOnRequest(t *testing.T) {
	engine := newTestEngine(testhelpers.StoreFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/stats/summary", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestGzipRequestBodyIsDecompressed(t *testing.T) {
	var got model.CustomerInput
	facade := testhelpers.StoreFacadeStub{
		CustomerFacadeStub: testhelpers.CustomerFacadeStub{CreateFn: func(_ context.Context, in model.CustomerInput) (*model.Customer, error) {
			got = in
			c := testhelpers.SampleCustomer()
			return &c, nil
		}},
	}
	engine := newTestEngine(facade)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(`{"nome":"Ana","email":"ana@example.com","nascimento":"1992-05-01"}`))
	_ = zw.Close()

	req := httptest.NewRequest(http.MethodPost, "/clientes", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	if got.Name != "Ana" || got.Email != "ana@example.com" {
		t.Fatalf("unexpected decoded input %+v", got)
	}
}

var _ handlers.StoreFacade = testhelpers.StoreFacadeStub{}
