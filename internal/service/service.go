package service

import (
	"github.com/bgpkrishna123/OLX/internal/cache"
	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/repository"
	"github.com/bgpkrishna123/OLX/internal/storage"
)

type Service struct {
	User    UserService
	Catalog CatalogService
	Query   QueryService
	Auth    AuthService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, listings *cache.ListingCache) *Service {
	return &Service{
		User:    NewUserService(rep.User, cfg),
		Catalog: NewCatalogService(rep.Item, storage, listings, cfg),
		Query:   NewQueryService(rep.Item, cfg),
		Auth:    NewAuthService(rep.User, cfg),
		Tables:  NewTablesService(rep.Tables),
	}
}
