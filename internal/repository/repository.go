package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bgpkrishna123/OLX/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserName(ctx context.Context, userID, name string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, itemID string) (*models.Item, error)
	GetUnsold(ctx context.Context) ([]models.Item, error)
	GetByOwner(ctx context.Context, userID string) ([]models.Item, error)
	GetPurchases(ctx context.Context, userID string) ([]models.Item, error)
	GetFavourites(ctx context.Context, userID string) ([]models.Item, error)
	ToggleFavourite(ctx context.Context, userID, itemID string) (string, error)
	Purchase(ctx context.Context, userID, itemID string) (bool, error)
	FindByStatus(ctx context.Context, status string) ([]models.Item, error)
	FindByLocation(ctx context.Context, location string) ([]models.Item, error)
	FindByName(ctx context.Context, name string) ([]models.Item, error)
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User   UserRepository
	Item   ItemRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Item:   NewItemRepository(db),
		Tables: NewTablesRepository(db),
	}
}
