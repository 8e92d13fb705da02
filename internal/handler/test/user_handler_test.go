package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bgpkrishna123/OLX/internal/models"
)

func TestGetCurrentUserHandler(t *testing.T) {
	t.Run("Успешное получение профиля", func(t *testing.T) {
		handler := createTestHandler()
		mockUserService := handler.UserService.(*MockUserService)

		mockUserService.On("GetUser", mock.Anything, "user-123").
			Return(&models.User{
				UserID: "user-123",
				Name:   "Иван",
				Email:  "ivan@example.com",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = withCaller(req, "user-123", "Иван", "ivan@example.com")
		rr := httptest.NewRecorder()

		handler.GetCurrentUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]string
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "user-123", response["userId"])
		assert.Equal(t, "Иван", response["name"])
	})

	t.Run("Без аутентификации", func(t *testing.T) {
		handler := createTestHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rr := httptest.NewRecorder()

		handler.GetCurrentUser(rr, req)

		assertJSONError(t, rr, http.StatusUnauthorized, "Требуется аутентификация")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("Успешное переименование", func(t *testing.T) {
		handler := createTestHandler()
		mockUserService := handler.UserService.(*MockUserService)

		mockUserService.On("RenameUser", mock.Anything, mock.Anything, "Пётр").
			Return(nil)

		body, _ := json.Marshal(map[string]string{"name": "Пётр"})
		req := httptest.NewRequest(http.MethodPut, "/api/users/user-123", bytes.NewBuffer(body))
		req = mux.SetURLVars(req, map[string]string{"id": "user-123"})
		req = withCaller(req, "user-123", "Иван", "ivan@example.com")
		rr := httptest.NewRecorder()

		handler.UpdateUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Чужой профиль", func(t *testing.T) {
		handler := createTestHandler()
		mockUserService := handler.UserService.(*MockUserService)

		body, _ := json.Marshal(map[string]string{"name": "Пётр"})
		req := httptest.NewRequest(http.MethodPut, "/api/users/user-999", bytes.NewBuffer(body))
		req = mux.SetURLVars(req, map[string]string{"id": "user-999"})
		req = withCaller(req, "user-123", "Иван", "ivan@example.com")
		rr := httptest.NewRecorder()

		handler.UpdateUser(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockUserService.AssertNotCalled(t, "RenameUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Пустое имя", func(t *testing.T) {
		handler := createTestHandler()
		mockUserService := handler.UserService.(*MockUserService)

		body, _ := json.Marshal(map[string]string{"name": ""})
		req := httptest.NewRequest(http.MethodPut, "/api/users/user-123", bytes.NewBuffer(body))
		req = mux.SetURLVars(req, map[string]string{"id": "user-123"})
		req = withCaller(req, "user-123", "Иван", "ivan@example.com")
		rr := httptest.NewRecorder()

		handler.UpdateUser(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "имя")
		mockUserService.AssertNotCalled(t, "RenameUser", mock.Anything, mock.Anything, mock.Anything)
	})
}
