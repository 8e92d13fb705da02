package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bgpkrishna123/OLX/cmd/app"
	"github.com/bgpkrishna123/OLX/internal/config"
	handlers "github.com/bgpkrishna123/OLX/internal/handler"
	"github.com/bgpkrishna123/OLX/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}", handler.UpdateUser).Methods(http.MethodPut)

	// fixed paths are registered before /api/items/{id}
	router.HandleFunc("/api/items", handler.GetItems).Methods(http.MethodGet)
	router.HandleFunc("/api/items", handler.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/api/items/search", handler.SearchItems).Methods(http.MethodGet)
	router.HandleFunc("/api/items/user", handler.GetUserItems).Methods(http.MethodGet)
	router.HandleFunc("/api/items/purchases", handler.GetUserPurchases).Methods(http.MethodGet)
	router.HandleFunc("/api/items/favourites", handler.GetFavourites).Methods(http.MethodGet)
	router.HandleFunc("/api/items/favourites", handler.ToggleFavourite).Methods(http.MethodPost)
	router.HandleFunc("/api/items/{id}", handler.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/api/items/{id}/purchase", handler.PurchaseItem).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
