package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/models"
	"github.com/bgpkrishna123/OLX/internal/repository"
)

// QueryService is the read-only projection over the same store. One
// matching policy everywhere: status is exact, location and name are
// case-insensitive substring matches.
type QueryService interface {
	FindByStatus(ctx context.Context, status string) ([]models.Item, error)
	FindByLocation(ctx context.Context, location string) ([]models.Item, error)
	FindByName(ctx context.Context, name string) ([]models.Item, error)
}

type queryService struct {
	itemRepo repository.ItemRepository
	cfg      *config.Config
}

func NewQueryService(itemRepo repository.ItemRepository, cfg *config.Config) QueryService {
	return &queryService{itemRepo: itemRepo, cfg: cfg}
}

func (s *queryService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg != nil && s.cfg.StorageTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.StorageTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *queryService) FindByStatus(ctx context.Context, status string) ([]models.Item, error) {
	if status != models.ItemStatusUnsold && status != models.ItemStatusSold {
		return nil, fmt.Errorf("статус должен быть unsold или sold: %w", ErrInvalidInput)
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.FindByStatus(dbCtx, status)
	if err != nil {
		return nil, wrapStore("ошибка при поиске по статусу", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (s *queryService) FindByLocation(ctx context.Context, location string) ([]models.Item, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("пустой фильтр местоположения: %w", ErrInvalidInput)
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.FindByLocation(dbCtx, location)
	if err != nil {
		return nil, wrapStore("ошибка при поиске по местоположению", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (s *queryService) FindByName(ctx context.Context, name string) ([]models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("пустой фильтр названия: %w", ErrInvalidInput)
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.FindByName(dbCtx, name)
	if err != nil {
		return nil, wrapStore("ошибка при поиске по названию", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}
