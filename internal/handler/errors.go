package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bgpkrishna123/OLX/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps a service failure kind to an HTTP status. The
// request layer decides retry vs user-visible error from the status.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrItemNotFound):
		WriteError(w, "Товар не найден", http.StatusNotFound)
	case errors.Is(err, service.ErrUserNotFound):
		WriteError(w, "Пользователь не найден", http.StatusNotFound)
	case errors.Is(err, service.ErrItemSold):
		WriteError(w, "Товар уже продан", http.StatusConflict)
	case errors.Is(err, service.ErrEmailTaken):
		WriteError(w, "Email уже существует", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Неверный email или пароль", http.StatusForbidden)
	case errors.Is(err, service.ErrPartialFailure):
		WriteError(w, "Операция выполнена частично, требуется сверка", http.StatusInternalServerError)
	case errors.Is(err, service.ErrStorageTimeout):
		WriteError(w, "Хранилище не ответило вовремя, попробуйте позже", http.StatusGatewayTimeout)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
