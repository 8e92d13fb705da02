package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bgpkrishna123/OLX/internal/repository"
	"github.com/bgpkrishna123/OLX/internal/service"
)

type FavouriteResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// CreateItem принимает multipart-форму с полями объявления и
// необязательным файлом image.
func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	caller := callerFromContext(r)
	if caller == nil {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		}
		return
	}

	req := repository.CreateListingRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Location:    r.FormValue("location"),
		Categories:  r.FormValue("categories"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствуют обязательные поля: name, price, location", http.StatusBadRequest)
		return
	}

	// image is optional, the item is created without one when missing
	var image *service.UploadedImage
	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		// formats image
		allowedTypes := map[string]bool{
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !allowedTypes[contentType] {
			WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
			return
		}

		image = &service.UploadedImage{
			FileName: fileHeader.Filename,
			File:     file,
			Size:     fileHeader.Size,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}

	item, err := h.CatalogService.CreateListing(r.Context(), caller, req, image)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) GetItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.CatalogService.GetUnsoldListings(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

// GetItem is public, listings have no read authorization.
func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	itemID := mux.Vars(r)["id"]
	if itemID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	item, err := h.CatalogService.GetListing(r.Context(), itemID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

func (h *Handlers) GetUserItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.CatalogService.GetOwnedListings(r.Context(), callerFromContext(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

func (h *Handlers) GetUserPurchases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.CatalogService.GetPurchases(r.Context(), callerFromContext(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

func (h *Handlers) GetFavourites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := h.CatalogService.GetFavourites(r.Context(), callerFromContext(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}

// ToggleFavourite serves both directions: the same endpoint adds the
// favourite when absent and removes it when present.
func (h *Handlers) ToggleFavourite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ItemID string `json:"itemId" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует itemId", http.StatusBadRequest)
		return
	}

	outcome, err := h.CatalogService.ToggleFavourite(r.Context(), callerFromContext(r), req.ItemID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	response := FavouriteResponse{Outcome: outcome}
	if outcome == "added" {
		response.Message = "Товар добавлен в избранное"
	} else {
		response.Message = "Товар удален из избранного"
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) PurchaseItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	itemID := mux.Vars(r)["id"]
	if itemID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	item, err := h.CatalogService.PurchaseListing(r.Context(), callerFromContext(r), itemID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, item, http.StatusOK)
}

// SearchItems takes exactly one filter: status, location or name.
func (h *Handlers) SearchItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	status := query.Get("status")
	location := query.Get("location")
	name := query.Get("name")

	var err error
	var items interface{}

	switch {
	case status != "":
		items, err = h.QueryService.FindByStatus(r.Context(), status)
	case location != "":
		items, err = h.QueryService.FindByLocation(r.Context(), location)
	case name != "":
		items, err = h.QueryService.FindByName(r.Context(), name)
	default:
		WriteError(w, "Укажите один из фильтров: status, location, name", http.StatusBadRequest)
		return
	}

	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, items, http.StatusOK)
}
