package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Name                   string    `json:"name" db:"name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

// AuthUser is the caller identity resolved from the access token.
// Core operations take it explicitly, they never read global state.
type AuthUser struct {
	UserID string
	Name   string
	Email  string
}

type Item struct {
	ItemID      string    `json:"itemId" db:"item_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Location    string    `json:"location" db:"location"`
	Categories  string    `json:"categories" db:"categories"`
	Image       string    `json:"image" db:"image"`
	OwnerID     string    `json:"owner" db:"owner_id"`
	OwnerName   string    `json:"ownerName" db:"owner_name"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Item statuses. The only allowed transition is unsold -> sold.
const (
	ItemStatusUnsold = "unsold"
	ItemStatusSold   = "sold"
)

// Favourite toggle outcomes.
const (
	FavouriteAdded   = "added"
	FavouriteRemoved = "removed"
)
