package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/models"
	"github.com/bgpkrishna123/OLX/internal/repository"
	"github.com/bgpkrishna123/OLX/internal/service"
)

type Handlers struct {
	UserService    service.UserService
	UserRepo       repository.UserRepository
	AuthService    service.AuthService
	CatalogService service.CatalogService
	QueryService   service.QueryService
	TablesRepo     repository.TablesRepository
	TablesService  service.TablesService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:    service.User,
		UserRepo:       repo.User,
		AuthService:    service.Auth,
		CatalogService: service.Catalog,
		QueryService:   service.Query,
		TablesRepo:     repo.Tables,
		TablesService:  service.Tables,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

// callerFromContext rebuilds the caller identity the auth middleware put
// into the request context. Nil means an anonymous request.
func callerFromContext(r *http.Request) *models.AuthUser {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		return nil
	}

	name, _ := r.Context().Value("name").(string)
	email, _ := r.Context().Value("email").(string)

	return &models.AuthUser{
		UserID: userID,
		Name:   name,
		Email:  email,
	}
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
