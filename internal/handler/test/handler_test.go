package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/bgpkrishna123/OLX/internal/config"
	handlers "github.com/bgpkrishna123/OLX/internal/handler"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		UserService:    &MockUserService{},
		UserRepo:       &MockUserRepository{},
		AuthService:    &MockAuthService{},
		CatalogService: &MockCatalogService{},
		QueryService:   &MockQueryService{},
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}

// withCaller puts the caller identity into the request context the same
// way the auth middleware does.
func withCaller(req *http.Request, userID, name, email string) *http.Request {
	ctx := req.Context()
	ctx = context.WithValue(ctx, "userID", userID)
	ctx = context.WithValue(ctx, "name", name)
	ctx = context.WithValue(ctx, "email", email)
	return req.WithContext(ctx)
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

func TestHealthHandler(t *testing.T) {
	handler := createTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler.HealthHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}
