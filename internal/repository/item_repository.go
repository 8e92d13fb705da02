package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bgpkrishna123/OLX/internal/models"
)

type ItemRepositoryImpl struct {
	db *sqlx.DB
}

// CreateListingRequest carries the raw form fields of a new listing.
// Price stays a string until the service validates it.
type CreateListingRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Categories  string `json:"categories"`
}

func NewItemRepository(db *sqlx.DB) *ItemRepositoryImpl {
	return &ItemRepositoryImpl{db: db}
}

// Create inserts the item and appends the owner link in one transaction,
// so the item is never visible without its owner's items entry.
func (r *ItemRepositoryImpl) Create(ctx context.Context, item *models.Item) error {
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if item.Status == "" {
		item.Status = models.ItemStatusUnsold
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}

	query := `
		INSERT INTO items
		(item_id, name, description, price, location, categories, image, owner_id, owner_name, status, created_at)
		VALUES
		(:item_id, :name, :description, :price, :location, :categories, :image, :owner_id, :owner_name, :status, :created_at)
	`

	if _, err = tx.NamedExecContext(ctx, query, item); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при создании товара: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO user_items (user_id, item_id) VALUES ($1, $2)`,
		item.OwnerID, item.ItemID,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при привязке товара к владельцу: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

// GetByID returns (nil, nil) when the item does not exist.
func (r *ItemRepositoryImpl) GetByID(ctx context.Context, itemID string) (*models.Item, error) {
	query := `SELECT * FROM items WHERE item_id = $1`

	var item models.Item
	err := r.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении товара: %w", err)
	}

	return &item, nil
}

func (r *ItemRepositoryImpl) GetUnsold(ctx context.Context) ([]models.Item, error) {
	// created_at DESC with item_id as a stable tiebreak, the feed order
	// must not shuffle between pages
	query := `SELECT * FROM items WHERE status = 'unsold' ORDER BY created_at DESC, item_id`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении непроданных товаров: %w", err)
	}

	return items, nil
}

// GetByOwner resolves the owner's items in append order.
func (r *ItemRepositoryImpl) GetByOwner(ctx context.Context, userID string) ([]models.Item, error) {
	query := `SELECT i.* FROM items i JOIN user_items ui ON ui.item_id = i.item_id WHERE ui.user_id = $1 ORDER BY ui.id`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении товаров владельца: %w", err)
	}

	return items, nil
}

// GetPurchases resolves the user's purchases in purchase order.
func (r *ItemRepositoryImpl) GetPurchases(ctx context.Context, userID string) ([]models.Item, error) {
	query := `SELECT i.* FROM items i JOIN purchases p ON p.item_id = i.item_id WHERE p.user_id = $1 ORDER BY p.id`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении покупок: %w", err)
	}

	return items, nil
}

func (r *ItemRepositoryImpl) GetFavourites(ctx context.Context, userID string) ([]models.Item, error) {
	query := `SELECT i.* FROM items i JOIN favourites f ON f.item_id = i.item_id WHERE f.user_id = $1 ORDER BY f.created_at DESC`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении избранного: %w", err)
	}

	return items, nil
}

// ToggleFavourite removes the favourite if present, adds it otherwise.
// The delete and the insert run in one transaction, and the (user_id,
// item_id) primary key keeps two concurrent toggles from both appending.
func (r *ItemRepositoryImpl) ToggleFavourite(ctx context.Context, userID, itemID string) (string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM favourites WHERE user_id = $1 AND item_id = $2`,
		userID, itemID,
	)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("ошибка при удалении из избранного: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if removed > 0 {
		if err = tx.Commit(); err != nil {
			return "", fmt.Errorf("ошибка при фиксации транзакции: %w", err)
		}
		return models.FavouriteRemoved, nil
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO favourites (user_id, item_id) VALUES ($1, $2) ON CONFLICT (user_id, item_id) DO NOTHING`,
		userID, itemID,
	); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("ошибка при добавлении в избранное: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return models.FavouriteAdded, nil
}

// Purchase flips the item to sold and appends it to the buyer's purchases.
// Returns false when the item was missing or already sold; the status
// guard in the UPDATE is what makes unsold -> sold a one-way street.
func (r *ItemRepositoryImpl) Purchase(ctx context.Context, userID, itemID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE items SET status = 'sold' WHERE item_id = $1 AND status = 'unsold'`,
		itemID,
	)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("ошибка при смене статуса товара: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		tx.Rollback()
		return false, nil
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO purchases (user_id, item_id) VALUES ($1, $2)`,
		userID, itemID,
	); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("ошибка при записи покупки: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return true, nil
}

func (r *ItemRepositoryImpl) FindByStatus(ctx context.Context, status string) ([]models.Item, error) {
	query := `SELECT * FROM items WHERE status = $1 ORDER BY created_at DESC, item_id`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске по статусу: %w", err)
	}

	return items, nil
}

// FindByLocation matches a case-insensitive substring. Same policy as
// FindByName, the two endpoints must not diverge.
func (r *ItemRepositoryImpl) FindByLocation(ctx context.Context, location string) ([]models.Item, error) {
	query := `SELECT * FROM items WHERE location ILIKE '%' || $1 || '%' ORDER BY created_at DESC, item_id`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, location)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске по местоположению: %w", err)
	}

	return items, nil
}

func (r *ItemRepositoryImpl) FindByName(ctx context.Context, name string) ([]models.Item, error) {
	query := `SELECT * FROM items WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at DESC, item_id`

	var items []models.Item
	err := r.db.SelectContext(ctx, &items, query, name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске по названию: %w", err)
	}

	return items, nil
}
