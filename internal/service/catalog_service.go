package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bgpkrishna123/OLX/internal/cache"
	"github.com/bgpkrishna123/OLX/internal/config"
	"github.com/bgpkrishna123/OLX/internal/models"
	"github.com/bgpkrishna123/OLX/internal/repository"
	"github.com/bgpkrishna123/OLX/internal/storage"
)

// UploadedImage is an optional image attached to a new listing.
type UploadedImage struct {
	FileName string
	File     io.Reader
	Size     int64
}

// CatalogService owns every mutation of items and of the user-item
// relationships. All operations take the caller identity explicitly.
type CatalogService interface {
	CreateListing(ctx context.Context, caller *models.AuthUser, req repository.CreateListingRequest, image *UploadedImage) (*models.Item, error)
	ToggleFavourite(ctx context.Context, caller *models.AuthUser, itemID string) (string, error)
	GetListing(ctx context.Context, itemID string) (*models.Item, error)
	GetUnsoldListings(ctx context.Context) ([]models.Item, error)
	GetOwnedListings(ctx context.Context, caller *models.AuthUser) ([]models.Item, error)
	GetPurchases(ctx context.Context, caller *models.AuthUser) ([]models.Item, error)
	GetFavourites(ctx context.Context, caller *models.AuthUser) ([]models.Item, error)
	PurchaseListing(ctx context.Context, caller *models.AuthUser, itemID string) (*models.Item, error)
}

type catalogService struct {
	itemRepo repository.ItemRepository
	storage  storage.Storage
	listings *cache.ListingCache
	cfg      *config.Config
}

func NewCatalogService(itemRepo repository.ItemRepository, storage storage.Storage, listings *cache.ListingCache, cfg *config.Config) CatalogService {
	return &catalogService{
		itemRepo: itemRepo,
		storage:  storage,
		listings: listings,
		cfg:      cfg,
	}
}

// opCtx bounds every store call so a dead collaborator cannot hang the
// request.
func (s *catalogService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg != nil && s.cfg.StorageTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.StorageTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *catalogService) CreateListing(ctx context.Context, caller *models.AuthUser, req repository.CreateListingRequest, image *UploadedImage) (*models.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	// validation happens before any write
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("отсутствует название товара: %w", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Location) == "" {
		return nil, fmt.Errorf("отсутствует местоположение: %w", ErrInvalidInput)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("цена должна быть неотрицательным числом: %w", ErrInvalidInput)
	}

	item := &models.Item{
		ItemID:      uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Location:    req.Location,
		Categories:  req.Categories,
		OwnerID:     caller.UserID,
		// snapshot at creation time, a later rename does not refresh it
		OwnerName: caller.Name,
		Status:    models.ItemStatusUnsold,
		CreatedAt: time.Now(),
	}

	// the image goes to MinIO before the DB transaction, a failed
	// transaction can still be compensated by deleting the object
	objectName := ""
	if image != nil {
		upCtx, cancel := s.opCtx(ctx)
		defer cancel()

		objectName, _, err = s.storage.UploadImage(upCtx, item.ItemID, item.Name, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, wrapStore("ошибка загрузки изображения", err)
		}
		item.Image = objectName
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	if err = s.itemRepo.Create(dbCtx, item); err != nil {
		if objectName != "" {
			if delErr := s.storage.DeleteImage(context.Background(), objectName); delErr != nil {
				// the object stays orphaned in MinIO, log enough to
				// reconcile it by hand and surface the partial failure
				log.Printf("Осиротевший объект %s: товар не создан (%v), удаление из MinIO не удалось (%v)",
					objectName, err, delErr)
				return nil, fmt.Errorf("товар не создан, изображение %s осталось в хранилище: %w",
					objectName, ErrPartialFailure)
			}
		}
		return nil, wrapStore("ошибка при создании товара", err)
	}

	s.listings.Invalidate(ctx)

	return item, nil
}

func (s *catalogService) ToggleFavourite(ctx context.Context, caller *models.AuthUser, itemID string) (string, error) {
	if caller == nil {
		return "", ErrUnauthenticated
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	item, err := s.itemRepo.GetByID(dbCtx, itemID)
	if err != nil {
		return "", wrapStore("ошибка при проверке товара", err)
	}

	if item == nil {
		return "", ErrItemNotFound
	}

	outcome, err := s.itemRepo.ToggleFavourite(dbCtx, caller.UserID, itemID)
	if err != nil {
		return "", wrapStore("ошибка при переключении избранного", err)
	}

	return outcome, nil
}

func (s *catalogService) GetListing(ctx context.Context, itemID string) (*models.Item, error) {
	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	item, err := s.itemRepo.GetByID(dbCtx, itemID)
	if err != nil {
		return nil, wrapStore("ошибка при получении товара", err)
	}

	if item == nil {
		return nil, ErrItemNotFound
	}

	return item, nil
}

func (s *catalogService) GetUnsoldListings(ctx context.Context) ([]models.Item, error) {
	if items, ok := s.listings.GetUnsold(ctx); ok {
		return items, nil
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.GetUnsold(dbCtx)
	if err != nil {
		return nil, wrapStore("ошибка при получении непроданных товаров", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	s.listings.SetUnsold(ctx, items)

	return items, nil
}

func (s *catalogService) GetOwnedListings(ctx context.Context, caller *models.AuthUser) ([]models.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.GetByOwner(dbCtx, caller.UserID)
	if err != nil {
		return nil, wrapStore("ошибка при получении товаров владельца", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (s *catalogService) GetPurchases(ctx context.Context, caller *models.AuthUser) ([]models.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.GetPurchases(dbCtx, caller.UserID)
	if err != nil {
		return nil, wrapStore("ошибка при получении покупок", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (s *catalogService) GetFavourites(ctx context.Context, caller *models.AuthUser) ([]models.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.GetFavourites(dbCtx, caller.UserID)
	if err != nil {
		return nil, wrapStore("ошибка при получении избранного", err)
	}

	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

func (s *catalogService) PurchaseListing(ctx context.Context, caller *models.AuthUser, itemID string) (*models.Item, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	dbCtx, cancel := s.opCtx(ctx)
	defer cancel()

	item, err := s.itemRepo.GetByID(dbCtx, itemID)
	if err != nil {
		return nil, wrapStore("ошибка при проверке товара", err)
	}

	if item == nil {
		return nil, ErrItemNotFound
	}

	if item.OwnerID == caller.UserID {
		return nil, fmt.Errorf("нельзя купить собственный товар: %w", ErrInvalidInput)
	}

	ok, err := s.itemRepo.Purchase(dbCtx, caller.UserID, itemID)
	if err != nil {
		return nil, wrapStore("ошибка при покупке товара", err)
	}

	// zero rows means somebody bought it between the check and the
	// update, the status guard never lets a sold item flip back
	if !ok {
		return nil, ErrItemSold
	}

	s.listings.Invalidate(ctx)

	item.Status = models.ItemStatusSold
	return item, nil
}
