package app

import (
	"log"

	"github.com/bgpkrishna123/OLX/internal/cache"
	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/database"
	"github.com/bgpkrishna123/OLX/internal/repository"
	"github.com/bgpkrishna123/OLX/internal/service"
	"github.com/bgpkrishna123/OLX/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// Redis is optional, without it the unsold feed is read from the DB
	var listings *cache.ListingCache
	rdb, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Внимание: Redis недоступен, кэш отключен: %v", err)
	} else {
		listings = cache.NewListingCache(rdb, cfg.CacheTTL)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, listings)

	return db, repo, services
}
