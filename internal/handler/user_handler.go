package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	caller := callerFromContext(r)
	if caller == nil {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// get user by id
	user, err := h.UserService.GetUser(r.Context(), caller.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// forming the response
	response := UserResponse{
		UserId: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}

	WriteSuccess(w, response, http.StatusOK)
}

// UpdateUser renames the caller. Existing listings keep the ownerName
// snapshot taken when they were created.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := mux.Vars(r)["id"]
	if userID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	caller := callerFromContext(r)
	if caller == nil {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if userID != caller.UserID {
		WriteError(w, "Нет прав для обновления этого пользователя", http.StatusForbidden)
		return
	}

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует имя пользователя", http.StatusBadRequest)
		return
	}

	if err := h.UserService.RenameUser(r.Context(), caller, req.Name); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь обновлен"}, http.StatusOK)
}
